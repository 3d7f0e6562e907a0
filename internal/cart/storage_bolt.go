package cart

import (
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// BoltStorage persists cart payloads in a bbolt file, one key per
// shopper session inside a single bucket. It is the server-side analog
// of the web client's local storage.
type BoltStorage struct {
	db      *bolt.DB
	session string
}

// OpenBolt opens (or creates) the cart database at path. An empty
// session gets a fresh uuid, starting a new cart.
func OpenBolt(path, session string) (*BoltStorage, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(StorageKey))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if session == "" {
		session = uuid.NewString()
	}
	return &BoltStorage{db: db, session: session}, nil
}

func (s *BoltStorage) Session() string { return s.session }

func (s *BoltStorage) Close() error { return s.db.Close() }

func (s *BoltStorage) Get() ([]byte, bool, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(StorageKey)).Get([]byte(s.session))
		if v != nil {
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, out != nil, nil
}

func (s *BoltStorage) Set(data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(StorageKey)).Put([]byte(s.session), data)
	})
}

func (s *BoltStorage) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(StorageKey)).Delete([]byte(s.session))
	})
}
