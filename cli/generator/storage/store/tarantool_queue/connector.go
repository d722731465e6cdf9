package tarantool_queue

/*
Плагин для работы с Tarantool queue.

Раздел настроек, которые должны быть в конфиге для подключения хранилища:

host = "localhost"
port = "3301"
user = "user"
password = "pass"
max_recons = 5
timeout = 1
reconnect = 1
queue = "testdata"
*/

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tarantool/go-tarantool"
	"github.com/tarantool/go-tarantool/queue"
)

type Connector struct {
	connection *tarantool.Connection
	queue      queue.Queue
	config     map[string]string
}

func (c *Connector) intOption(name string) (int, error) {
	v, err := strconv.Atoi(c.config[name])
	if err != nil {
		return 0, fmt.Errorf("не удалось получить %s: %v", name, err)
	}
	return v, nil
}

// Opts параметры соединения из конфига
func (c *Connector) Opts() (tarantool.Opts, error) {
	maxRecons, err := c.intOption("max_recons")
	if err != nil {
		return tarantool.Opts{}, err
	}
	timeout, err := c.intOption("timeout")
	if err != nil {
		return tarantool.Opts{}, err
	}
	reconnect, err := c.intOption("reconnect")
	if err != nil {
		return tarantool.Opts{}, err
	}

	return tarantool.Opts{
		Timeout:       time.Duration(timeout) * time.Second,
		Reconnect:     time.Duration(reconnect) * time.Second,
		MaxReconnects: uint(maxRecons),
		User:          c.config["user"],
		Pass:          c.config["password"],
	}, nil
}

func (c *Connector) Init(cfg map[string]string) error {
	if cfg == nil {
		return fmt.Errorf("некорректная ссылка на конфигурацию")
	}
	c.config = cfg

	opts, err := c.Opts()
	if err != nil {
		return err
	}

	conStr := fmt.Sprintf("%s:%s", c.config["host"], c.config["port"])
	c.connection, err = tarantool.Connect(conStr, opts)
	if err != nil {
		return fmt.Errorf("не удалось подключиться к Tarantool: %v", err)
	}
	c.queue = queue.New(c.connection, c.config["queue"])

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

	if _, err = c.queue.Put(document); err != nil {
		return fmt.Errorf("не удалось поставить документ в очередь: %v", err)
	}
	return nil
}

func (c *Connector) Close() error {
	if c.connection == nil {
		return nil
	}
	return c.connection.Close()
}
