package postgresql

/*
Настройки, которые могут (а не которые – должны) быть в конфиге для подключения хранилища:

host = "localhost"
port = "5432"
user = "postgres"
password = "postgres"
database = "fixtures"
table = "testdata"
field = "document"
sslmode = "disable"
*/

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Table    string
	Field    string
	SSLMode  string
}

type Connector struct {
	connection *sql.DB
	settings   Settings
}

func getOptionValue(optionName string, optionDefaultValue string, settings map[string]string) string {
	optionValue := settings[optionName]
	if optionValue == "" {
		log.Warnf("Ключ '%s' не найден в конфигурации PostgreSQL. Используется значение по умолчанию '%s'.", optionName, optionDefaultValue)
		optionValue = optionDefaultValue
	}

	return optionValue
}

func (c *Connector) FillSettings(settings map[string]string) {
	c.settings.Host = getOptionValue("host", "localhost", settings)
	c.settings.Port = getOptionValue("port", "5432", settings)
	c.settings.User = getOptionValue("user", "postgres", settings)
	c.settings.Password = getOptionValue("password", "postgres", settings)
	c.settings.Database = getOptionValue("database", "fixtures", settings)
	c.settings.Table = getOptionValue("table", "testdata", settings)
	c.settings.Field = getOptionValue("field", "document", settings)
	c.settings.SSLMode = getOptionValue("sslmode", "disable", settings)
}

func (c *Connector) ConnectionString() string {
	return fmt.Sprintf("dbname=%s host=%s port=%s user=%s password=%s sslmode=%s",
		c.settings.Database, c.settings.Host, c.settings.Port, c.settings.User, c.settings.Password, c.settings.SSLMode)
}

func (c *Connector) InsertQuery() string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1)", c.settings.Table, c.settings.Field)
}

func (c *Connector) Init(cfg map[string]string) error {
	var (
		err error
	)
	if cfg == nil {
		return fmt.Errorf("некорректная ссылка на конфигурацию")
	}
	c.FillSettings(cfg)

	if c.connection, err = sql.Open("postgres", c.ConnectionString()); err != nil {
		return fmt.Errorf("ошибка подключения к PostgreSQL: %v", err)
	}

	if err = c.connection.Ping(); err != nil {
		return fmt.Errorf("PostgreSQL недоступен: %v", err)
	}
	return err
}

func (c *Connector) Save(msg interface{ ToBytes() ([]byte, error) }) error {
	if msg == nil {
		return fmt.Errorf("некорректная ссылка на документ")
	}

	document, err := msg.ToBytes()
	if err != nil {
		return fmt.Errorf("ошибка сериализации документа: %v", err)
	}

	if _, err = c.connection.Exec(c.InsertQuery(), document); err != nil {
		return fmt.Errorf("не удалось вставить запись: %v", err)
	}
	return nil
}

func (c *Connector) Close() error {
	if c.connection == nil {
		return nil
	}
	return c.connection.Close()
}
