package config

/*
Описание конфигурационного файла генератора.

Все поля необязательны: без конфига генератор работает с фиксированными
значениями по умолчанию (9000 записей, старт в 51.123456/8.123456/455,
вывод в ./testdata.json).
*/

import (
	"os"

	"github.com/daniil11ru/testdata-gen/cli/generator/sampler"
	"github.com/daniil11ru/testdata-gen/libs/telemetry"
	log "github.com/sirupsen/logrus"

	"gopkg.in/yaml.v2"
)

const (
	DefaultOutputPath = "./testdata.json"
	DefaultFormat     = telemetry.FormatJSON
)

type Coordinate struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Height    int     `yaml:"height"`
}

type Settings struct {
	OutputPath        string                       `yaml:"output_path"`
	Format            string                       `yaml:"format"`
	StepCount         *int                         `yaml:"step_count"`
	Seed              int64                        `yaml:"seed"`
	InitialCoordinate *Coordinate                  `yaml:"initial_coordinate"`
	CountdownMin      int                          `yaml:"countdown_min"`
	CountdownMax      int                          `yaml:"countdown_max"`
	DeltaLatitudeMin  float64                      `yaml:"delta_latitude_min"`
	DeltaLatitudeMax  float64                      `yaml:"delta_latitude_max"`
	LogLevel          string                       `yaml:"log_level"`
	LogFilePath       string                       `yaml:"log_file_path"`
	LogMaxAgeDays     int                          `yaml:"log_max_age_days"`
	Store             map[string]map[string]string `yaml:"storage"`
}

func (s *Settings) GetLogLevel() log.Level {
	var lvl log.Level

	switch s.LogLevel {
	case "DEBUG":
		lvl = log.DebugLevel
	case "INFO":
		lvl = log.InfoLevel
	case "WARN":
		lvl = log.WarnLevel
	case "ERROR":
		lvl = log.ErrorLevel
	default:
		lvl = log.InfoLevel
	}
	return lvl
}

func (s *Settings) GetStepCount() int {
	if s.StepCount == nil {
		return sampler.DefaultStepCount
	}
	return *s.StepCount
}

func (s *Settings) GetFormat() telemetry.Format {
	return telemetry.Format(s.Format)
}

func (s *Settings) GetInitialCoordinate() telemetry.Coordinate {
	if s.InitialCoordinate == nil {
		return sampler.DefaultInitialCoordinate
	}
	return telemetry.Coordinate{
		Latitude:  s.InitialCoordinate.Latitude,
		Longitude: s.InitialCoordinate.Longitude,
		Height:    s.InitialCoordinate.Height,
	}
}

func (s *Settings) GetSamplerSettings() sampler.Settings {
	return sampler.Settings{
		CountdownMin:     s.CountdownMin,
		CountdownMax:     s.CountdownMax,
		DeltaLatitudeMin: s.DeltaLatitudeMin,
		DeltaLatitudeMax: s.DeltaLatitudeMax,
	}
}

// Defaults настройки, с которыми генератор работает без конфига
func Defaults() Settings {
	c := Settings{}
	applyDefaults(&c)
	return c
}

func New(confPath string) (Settings, error) {
	c := Settings{}
	data, err := os.ReadFile(confPath)
	if err != nil {
		return c, err
	}
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return c, err
	}

	applyDefaults(&c)

	return c, err
}

func applyDefaults(c *Settings) {
	d := sampler.DefaultSettings()

	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}

	if c.Format == "" {
		c.Format = string(DefaultFormat)
	}
	if _, err := telemetry.ParseFormat(c.Format); err != nil {
		log.Errorf("Недопустимый формат вывода %q. Используется %q.", c.Format, DefaultFormat)
		c.Format = string(DefaultFormat)
	}

	if c.StepCount != nil && *c.StepCount < 0 {
		log.Errorf("Количество шагов (%d) не может быть отрицательным. Используется значение по умолчанию %d.", *c.StepCount, sampler.DefaultStepCount)
		c.StepCount = nil
	}

	if c.CountdownMin == 0 {
		c.CountdownMin = d.CountdownMin
	}
	if c.CountdownMax == 0 {
		c.CountdownMax = d.CountdownMax
	}
	if c.CountdownMin < 1 || c.CountdownMin > c.CountdownMax {
		log.Errorf("Некорректный интервал обновления координаты [%d;%d]. Используется [%d;%d].", c.CountdownMin, c.CountdownMax, d.CountdownMin, d.CountdownMax)
		c.CountdownMin = d.CountdownMin
		c.CountdownMax = d.CountdownMax
	}

	if c.DeltaLatitudeMin == 0 {
		c.DeltaLatitudeMin = d.DeltaLatitudeMin
	}
	if c.DeltaLatitudeMax == 0 {
		c.DeltaLatitudeMax = d.DeltaLatitudeMax
	}
	if c.DeltaLatitudeMin <= 0 || c.DeltaLatitudeMin > c.DeltaLatitudeMax {
		log.Errorf("Некорректный диапазон приращения широты [%g;%g]. Используется [%g;%g].", c.DeltaLatitudeMin, c.DeltaLatitudeMax, d.DeltaLatitudeMin, d.DeltaLatitudeMax)
		c.DeltaLatitudeMin = d.DeltaLatitudeMin
		c.DeltaLatitudeMax = d.DeltaLatitudeMax
	}
}
