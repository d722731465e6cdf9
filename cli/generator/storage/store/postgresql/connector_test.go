package postgresql

import (
	"io/ioutil"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestFillSettings(t *testing.T) {
	log.SetOutput(ioutil.Discard)

	c := Connector{}
	c.FillSettings(map[string]string{
		"host":     "db",
		"user":     "fixtures",
		"password": "secret",
		"table":    "sensor_testdata",
	})

	assert.Equal(t, Settings{
		Host:     "db",
		Port:     "5432",
		User:     "fixtures",
		Password: "secret",
		Database: "fixtures",
		Table:    "sensor_testdata",
		Field:    "document",
		SSLMode:  "disable",
	}, c.settings)
	assert.Equal(t, "dbname=fixtures host=db port=5432 user=fixtures password=secret sslmode=disable", c.ConnectionString())
	assert.Equal(t, "INSERT INTO sensor_testdata (document) VALUES ($1)", c.InsertQuery())
}

func TestInitErrors(t *testing.T) {
	c := Connector{}
	assert.Error(t, c.Init(nil))
	assert.NoError(t, c.Close())
	assert.Error(t, c.Save(nil))
}
