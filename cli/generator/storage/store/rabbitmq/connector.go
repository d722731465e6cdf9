package rabbitmq

/*
Плагин для складывания фикстур в очередь RabbitMQ.

Раздел настроек:

host = "localhost"
port = "5672"
user = "guest"
password = "guest"
queue = "testdata"
content_type = "application/json"
*/

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

type Connector struct {
	connection  *amqp.Connection
	channel     *amqp.Channel
	queue       string
	contentType string
}

func getOptionValue(optionName string, optionDefaultValue string, settings map[string]string) string {
	optionValue := settings[optionName]
	if optionValue == "" {
		log.Warnf("Ключ '%s' не найден в конфигурации RabbitMQ. Используется значение по умолчанию '%s'.", optionName, optionDefaultValue)
		optionValue = optionDefaultValue
	}

	return optionValue
}

func URL(settings map[string]string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		getOptionValue("user", "guest", settings),
		getOptionValue("password", "guest", settings),
		getOptionValue("host", "localhost", settings),
		getOptionValue("port", "5672", settings),
	)
}

func (c *Connector) Init(cfg map[string]string) error {
	var err error
	if cfg == nil {
		return fmt.Errorf("некорректная ссылка на конфигурацию")
	}

	c.queue = getOptionValue("queue", "testdata", cfg)
	c.contentType = getOptionValue("content_type", "application/json", cfg)

	if c.connection, err = amqp.Dial(URL(cfg)); err != nil {
		return fmt.Errorf("ошибка подключения к RabbitMQ: %v", err)
	}

	if c.channel, err = c.connection.Channel(); err != nil {
		return fmt.Errorf("не удалось открыть канал RabbitMQ: %v", err)
	}

	if _, err = c.channel.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("не удалось объявить очередь %s: %v", c.queue, err)
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

	err = c.channel.Publish("", c.queue, false, false, amqp.Publishing{
		ContentType:  c.contentType,
		DeliveryMode: amqp.Persistent,
		Body:         document,
	})
	if err != nil {
		return fmt.Errorf("не удалось положить документ в очередь %s: %v", c.queue, err)
	}
	return nil
}

func (c *Connector) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			return err
		}
	}
	if c.connection == nil {
		return nil
	}
	return c.connection.Close()
}
