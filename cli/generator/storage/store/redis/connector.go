package redis

/*
Плагин для сохранения фикстур в Redis.

Раздел настроек в конфиге:

server = "localhost:6379"
password = ""
db = "0"
key = "testdata"
ttl = "0"        // время жизни ключа в секундах, 0 – без ограничения
*/

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type Connector struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func atoiOption(cfg map[string]string, name string, def int) (int, error) {
	raw, ok := cfg[name]
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("не удалось получить %s: %v", name, err)
	}
	return v, nil
}

func (c *Connector) Init(cfg map[string]string) error {
	if cfg == nil {
		return fmt.Errorf("некорректная ссылка на конфигурацию")
	}

	db, err := atoiOption(cfg, "db", 0)
	if err != nil {
		return err
	}
	ttl, err := atoiOption(cfg, "ttl", 0)
	if err != nil {
		return err
	}

	c.key = cfg["key"]
	if c.key == "" {
		c.key = "testdata"
	}
	c.ttl = time.Duration(ttl) * time.Second

	server := cfg["server"]
	if server == "" {
		server = "localhost:6379"
	}
	c.client = redis.NewClient(&redis.Options{
		Addr:     server,
		Password: cfg["password"],
		DB:       db,
	})

	if err := c.client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("Redis недоступен: %v", err)
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

	if err := c.client.Set(context.Background(), c.key, document, c.ttl).Err(); err != nil {
		return fmt.Errorf("не удалось записать ключ %s: %v", c.key, err)
	}
	return nil
}

func (c *Connector) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
