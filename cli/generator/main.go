package main

/*
Генератор тестовых данных телеметрии.

Создает последовательность синтетических записей (температура, скорость,
координаты, пиковые ускорения, контрольная сумма) и записывает ее в файл.

Usage:
  -c string
    	Путь до конфига (необязательно)
  -o string
    	Путь до выходного файла, перекрывает output_path
  -n int
    	Количество записей, перекрывает step_count
  -seed int
    	Зерно генератора случайных чисел, перекрывает seed

Example

```
./generator -o ./testdata.json -n 9000 -seed 42
```
*/

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/daniil11ru/testdata-gen/cli/generator/config"
	"github.com/daniil11ru/testdata-gen/cli/generator/output"
	"github.com/daniil11ru/testdata-gen/cli/generator/sampler"
	"github.com/daniil11ru/testdata-gen/cli/generator/storage"
	"github.com/daniil11ru/testdata-gen/libs/telemetry"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type overrides struct {
	outputPath string
	stepCount  int
	seed       int64
}

func main() {
	configFilePath := ""
	o := overrides{}
	flag.StringVar(&configFilePath, "c", "", "Путь до конфига")
	flag.StringVar(&o.outputPath, "o", "", "Путь до выходного файла")
	flag.IntVar(&o.stepCount, "n", -1, "Количество записей")
	flag.Int64Var(&o.seed, "seed", 0, "Зерно генератора случайных чисел")
	flag.Parse()

	settings, err := getConfig(configFilePath)
	if err != nil {
		log.Fatalf("Не удалось получить конфиг: %v", err)
		return
	}
	o.apply(&settings)

	configureLogging(settings)

	if err := run(settings); err != nil {
		log.Fatalf("Не удалось сгенерировать тестовые данные: %v", err)
	}
}

func getConfig(configFilePath string) (config.Settings, error) {
	if configFilePath == "" {
		return config.Defaults(), nil
	}
	return config.New(configFilePath)
}

func (o overrides) apply(settings *config.Settings) {
	if o.outputPath != "" {
		settings.OutputPath = o.outputPath
	}
	if o.stepCount >= 0 {
		n := o.stepCount
		settings.StepCount = &n
	}
	if o.seed != 0 {
		settings.Seed = o.seed
	}
}

func configureLogging(settings config.Settings) *lumberjack.Logger {
	log.SetLevel(settings.GetLogLevel())

	consoleFmt := &log.TextFormatter{ForceColors: true, FullTimestamp: false}
	log.SetFormatter(consoleFmt)
	log.SetOutput(os.Stdout)

	if settings.LogFilePath == "" {
		return nil
	}

	logDir := filepath.Dir(settings.LogFilePath)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
			log.Fatalf("Не получилось создать директорию для логов: %v", err)
		}
	}

	lumberjackLogger := &lumberjack.Logger{
		Filename:   settings.LogFilePath,
		MaxSize:    100,
		MaxBackups: 30,
		MaxAge:     settings.LogMaxAgeDays,
		Compress:   true,
	}

	fileFmt := &log.TextFormatter{DisableColors: true, FullTimestamp: true}
	hook := lfshook.NewHook(lfshook.WriterMap{
		log.PanicLevel: lumberjackLogger,
		log.FatalLevel: lumberjackLogger,
		log.ErrorLevel: lumberjackLogger,
		log.WarnLevel:  lumberjackLogger,
		log.InfoLevel:  lumberjackLogger,
		log.DebugLevel: lumberjackLogger,
		log.TraceLevel: lumberjackLogger,
	}, fileFmt)

	log.AddHook(hook)

	return lumberjackLogger
}

func run(settings config.Settings) error {
	initial := settings.GetInitialCoordinate()
	stepCount := settings.GetStepCount()

	log.WithFields(log.Fields{
		"steps":     stepCount,
		"seed":      settings.Seed,
		"latitude":  initial.Latitude,
		"longitude": initial.Longitude,
		"height":    initial.Height,
	}).Info("Запуск генерации тестовых данных")

	s := sampler.New(settings.GetSamplerSettings(), settings.Seed)
	records := s.Sequence(stepCount, sampler.InitialState(initial))

	log.WithFields(sampler.Summarize(initial, records).Fields()).Info("Генерация завершена")

	if err := output.Write(records, settings.OutputPath, settings.GetFormat()); err != nil {
		return err
	}

	if len(settings.Store) == 0 {
		return nil
	}

	repo := storage.NewRepository()
	defer repo.Close()

	if err := repo.LoadStorages(settings.Store); err != nil {
		return err
	}

	return repo.Save(&telemetry.Document{Records: records, Format: settings.GetFormat()})
}
