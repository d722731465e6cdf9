package mysql

/*
Настройки хранилища MySQL (все необязательные):

host = "localhost"
port = "3306"
user = "root"
password = ""
database = "fixtures"
table = "testdata"
field = "document"
*/

import (
	"database/sql"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"
)

type Connector struct {
	connection *sql.DB
	dsn        *mysql.Config
	table      string
	field      string
}

func getOptionValue(optionName string, optionDefaultValue string, settings map[string]string) string {
	optionValue, ok := settings[optionName]
	if !ok {
		log.Warnf("Ключ '%s' не найден в конфигурации MySQL. Используется значение по умолчанию '%s'.", optionName, optionDefaultValue)
		optionValue = optionDefaultValue
	}

	return optionValue
}

func (c *Connector) FillSettings(settings map[string]string) {
	c.dsn = mysql.NewConfig()
	c.dsn.Net = "tcp"
	c.dsn.Addr = net.JoinHostPort(getOptionValue("host", "localhost", settings), getOptionValue("port", "3306", settings))
	c.dsn.User = getOptionValue("user", "root", settings)
	c.dsn.Passwd = getOptionValue("password", "", settings)
	c.dsn.DBName = getOptionValue("database", "fixtures", settings)
	c.table = getOptionValue("table", "testdata", settings)
	c.field = getOptionValue("field", "document", settings)
}

func (c *Connector) DSN() string {
	return c.dsn.FormatDSN()
}

func (c *Connector) InsertQuery() string {
	return fmt.Sprintf("INSERT INTO `%s` (`%s`) VALUES (?)", c.table, c.field)
}

func (c *Connector) Init(cfg map[string]string) error {
	var err error
	if cfg == nil {
		return fmt.Errorf("некорректная ссылка на конфигурацию")
	}
	c.FillSettings(cfg)

	if c.connection, err = sql.Open("mysql", c.DSN()); err != nil {
		return fmt.Errorf("ошибка подключения к MySQL: %v", err)
	}

	if err = c.connection.Ping(); err != nil {
		return fmt.Errorf("MySQL недоступен: %v", err)
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
