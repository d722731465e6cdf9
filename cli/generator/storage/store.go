package storage

import (
	"errors"
	"sort"

	"github.com/daniil11ru/testdata-gen/cli/generator/storage/store/mysql"
	"github.com/daniil11ru/testdata-gen/cli/generator/storage/store/nats"
	"github.com/daniil11ru/testdata-gen/cli/generator/storage/store/postgresql"
	"github.com/daniil11ru/testdata-gen/cli/generator/storage/store/rabbitmq"
	"github.com/daniil11ru/testdata-gen/cli/generator/storage/store/redis"
	"github.com/daniil11ru/testdata-gen/cli/generator/storage/store/tarantool_queue"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidStorage = errors.New("хранилище не найдено")
var ErrUnknownStorage = errors.New("хранилище не поддерживается")

type Store interface {
	Connector
	Saver
}

// Saver интерфейс для сохранения фикстур во внешние хранилища
type Saver interface {
	// Save сохранение в хранилище
	Save(interface{ ToBytes() ([]byte, error) }) error
}

// Connector интерфейс для подключения внешних хранилищ
type Connector interface {
	// Init установка соединения с хранилищем
	Init(map[string]string) error

	// Close закрытие соединения с хранилищем
	Close() error
}

// Repository набор выходных хранилищ
type Repository struct {
	storages []Saver
	closers  []Connector
	names    []string
}

// AddStore добавляет хранилище для сохранения данных
func (r *Repository) AddStore(name string, s Saver) {
	r.storages = append(r.storages, s)
	r.names = append(r.names, name)
	if c, ok := s.(Connector); ok {
		r.closers = append(r.closers, c)
	}
}

func (r *Repository) Len() int {
	return len(r.storages)
}

// Save сохраняет данные во все установленные хранилища по очереди
func (r *Repository) Save(m interface{ ToBytes() ([]byte, error) }) error {
	for i, store := range r.storages {
		if err := store.Save(m); err != nil {
			return err
		}
		log.Infof("Фикстура сохранена в хранилище %s", r.names[i])
	}
	return nil
}

// Close закрывает соединения со всеми хранилищами, возвращает первую ошибку
func (r *Repository) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			log.Errorf("Ошибка закрытия хранилища: %v", err)
			if first == nil {
				first = err
			}
		}
	}
	r.closers = nil
	return first
}

func newStore(name string) (Store, error) {
	switch name {
	case "rabbitmq":
		return &rabbitmq.Connector{}, nil
	case "postgresql":
		return &postgresql.Connector{}, nil
	case "nats":
		return &nats.Connector{}, nil
	case "tarantool_queue":
		return &tarantool_queue.Connector{}, nil
	case "redis":
		return &redis.Connector{}, nil
	case "mysql":
		return &mysql.Connector{}, nil
	default:
		return nil, ErrUnknownStorage
	}
}

// LoadStorages загружает хранилища из структуры конфига
func (r *Repository) LoadStorages(storages map[string]map[string]string) error {
	if len(storages) == 0 {
		return ErrInvalidStorage
	}

	names := make([]string, 0, len(storages))
	for name := range storages {
		names = append(names, name)
	}
	sort.Strings(names)

	stores := make([]Store, 0, len(names))
	for _, name := range names {
		db, err := newStore(name)
		if err != nil {
			return err
		}
		stores = append(stores, db)
	}

	for i, db := range stores {
		if err := db.Init(storages[names[i]]); err != nil {
			return err
		}

		r.AddStore(names[i], db)
	}
	return nil
}

// NewRepository создает пустой репозиторий
func NewRepository() *Repository {
	return &Repository{}
}
