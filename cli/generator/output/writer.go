package output

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/daniil11ru/testdata-gen/libs/telemetry"
	log "github.com/sirupsen/logrus"
)

// Write сериализует последовательность и записывает ее в path, перезаписывая существующий файл
func Write(records []telemetry.Record, path string, format telemetry.Format) (err error) {
	doc := telemetry.Document{Records: records, Format: format}
	data, err := doc.ToBytes()
	if err != nil {
		return fmt.Errorf("ошибка сериализации последовательности: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
			if mkErr := os.MkdirAll(dir, os.ModePerm); mkErr != nil {
				return fmt.Errorf("не удалось создать директорию %s: %w", dir, mkErr)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("не удалось открыть файл %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("не удалось закрыть файл %s: %w", path, closeErr)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("ошибка записи в файл %s: %w", path, err)
	}
	if format != telemetry.FormatMsgpack {
		if _, err = f.Write([]byte("\n")); err != nil {
			return fmt.Errorf("ошибка записи в файл %s: %w", path, err)
		}
	}

	log.WithFields(log.Fields{"path": path, "records": len(records), "bytes": len(data)}).Info("Последовательность записана")
	return nil
}

// Read читает ранее записанную последовательность
func Read(path string, format telemetry.Format) ([]telemetry.Record, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл %s: %w", path, err)
	}

	return telemetry.Decode(data, format)
}
