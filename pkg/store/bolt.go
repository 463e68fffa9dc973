package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

// hackathonsBucket is the bbolt bucket holding all records, keyed by id.
const hackathonsBucket = "hackathons"

// Bolt is a Store backed by a single bbolt database file. It suits
// deployments that want one artifact instead of a directory of YAML files.
type Bolt struct {
	db *bbolt.DB
}

var _ Store = (*Bolt)(nil)

// NewBolt opens (or creates) a bbolt-backed store at dbPath.
func NewBolt(dbPath string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), dirPermissions); err != nil {
		return nil, errors.WrapIO("create", filepath.Dir(dbPath), err)
	}

	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, errors.WrapIO("open", dbPath, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(hackathonsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.WrapResource("create", "bucket", hackathonsBucket, err)
	}

	return &Bolt{db: db}, nil
}

// List returns all records ordered by id. bbolt iterates keys in byte
// order, which matches the id ordering contract directly.
func (b *Bolt) List() ([]hackathons.Hackathon, error) {
	var records []hackathons.Hackathon
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(hackathonsBucket))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			var h hackathons.Hackathon
			if err := json.Unmarshal(v, &h); err != nil {
				return errors.WrapParse("json", string(k), err)
			}
			records = append(records, h)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Get returns the record with the given id.
func (b *Bolt) Get(id string) (hackathons.Hackathon, error) {
	var h hackathons.Hackathon
	var found bool

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(hackathonsBucket))
		if bucket == nil {
			return nil
		}
		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &h)
	})
	if err != nil {
		return hackathons.Hackathon{}, errors.WrapResource("get", "hackathon", id, err)
	}
	if !found {
		return hackathons.Hackathon{}, errors.NewNotFoundError("hackathon", id)
	}
	return h, nil
}

// Upsert creates or replaces a record.
func (b *Bolt) Upsert(h hackathons.Hackathon) error {
	if err := h.Validate(); err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(hackathonsBucket))
		if bucket == nil {
			return errors.NewNotFoundError("bucket", hackathonsBucket)
		}
		data, err := json.Marshal(h)
		if err != nil {
			return errors.WrapResource("marshal", "hackathon", h.ID, err)
		}
		return bucket.Put([]byte(h.ID), data)
	})
}

// Delete removes a record by id. Missing keys are not an error.
func (b *Bolt) Delete(id string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(hackathonsBucket))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})
}

// Close closes the underlying database.
func (b *Bolt) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
