package nats

/*
Плагин для сохранения фикстур в объектное хранилище NATS JetStream.

Раздел настроек:

servers = "nats://localhost:4222"
user = ""
password = ""
bucket = "fixtures"
object = "testdata.json"
*/

import (
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

const (
	defaultBucket = "fixtures"
	defaultObject = "testdata.json"
)

type Connector struct {
	connection *nats.Conn
	store      nats.ObjectStore
	object     string
}

func (c *Connector) Init(cfg map[string]string) error {
	var err error
	if cfg == nil {
		return fmt.Errorf("некорректная ссылка на конфигурацию")
	}

	servers := cfg["servers"]
	if servers == "" {
		servers = nats.DefaultURL
	}

	opts := []nats.Option{nats.Name("testdata-gen")}
	if cfg["user"] != "" {
		opts = append(opts, nats.UserInfo(cfg["user"], cfg["password"]))
	}

	if c.connection, err = nats.Connect(servers, opts...); err != nil {
		return fmt.Errorf("ошибка подключения к NATS: %v", err)
	}

	js, err := c.connection.JetStream()
	if err != nil {
		return fmt.Errorf("JetStream недоступен: %v", err)
	}

	bucket := cfg["bucket"]
	if bucket == "" {
		bucket = defaultBucket
	}
	c.object = cfg["object"]
	if c.object == "" {
		c.object = defaultObject
	}

	c.store, err = js.ObjectStore(bucket)
	if errors.Is(err, nats.ErrBucketNotFound) || errors.Is(err, nats.ErrStreamNotFound) {
		log.Infof("Бакет %s не найден в NATS, создаем", bucket)
		c.store, err = js.CreateObjectStore(&nats.ObjectStoreConfig{
			Bucket:      bucket,
			Description: "Синтетическая телеметрия для тестов",
		})
	}
	if err != nil {
		return fmt.Errorf("не удалось получить бакет %s: %v", bucket, err)
	}

	return nil
}

func (c *Connector) Save(msg interface{ ToBytes() ([]byte, error) }) error {
	if msg == nil {
		return fmt.Errorf("некорректная ссылка на документ")
	}

	document, err := msg.ToBytes()
	if err != nil {
		return fmt.Errorf("ошибка сериализации документа: %v", err)
	}

	if _, err = c.store.PutBytes(c.object, document); err != nil {
		return fmt.Errorf("не удалось сохранить объект %s: %v", c.object, err)
	}
	return nil
}

func (c *Connector) Close() error {
	if c.connection == nil {
		return nil
	}
	c.connection.Close()
	return nil
}
