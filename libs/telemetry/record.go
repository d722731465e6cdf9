package telemetry

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// Coordinate точка трека: широта и долгота в градусах, высота в метрах
type Coordinate struct {
	Latitude  float64 `json:"latitude" msgpack:"latitude"`
	Longitude float64 `json:"longitude" msgpack:"longitude"`
	Height    int     `json:"height" msgpack:"height"`
}

// Record одна запись телеметрии, соответствует одному шагу генерации
type Record struct {
	CurrentTemperature float64    `json:"current_temperature" msgpack:"current_temperature"`
	CurrentSpeed       float64    `json:"current_speed" msgpack:"current_speed"`
	CurrentCoordinates Coordinate `json:"current_coordinates" msgpack:"current_coordinates"`
	PeakAccelerationX  float64    `json:"peak_acceleration_x" msgpack:"peak_acceleration_x"`
	PeakAccelerationY  float64    `json:"peak_acceleration_y" msgpack:"peak_acceleration_y"`
	PeakAccelerationZ  float64    `json:"peak_acceleration_z" msgpack:"peak_acceleration_z"`
	Checksum           float64    `json:"checksum" msgpack:"checksum"`
}

// ExpectedChecksum сумма всех числовых полей записи, кроме самой контрольной суммы
func (r *Record) ExpectedChecksum() float64 {
	return Round(r.CurrentTemperature+r.CurrentSpeed+
		r.CurrentCoordinates.Latitude+r.CurrentCoordinates.Longitude+float64(r.CurrentCoordinates.Height)+
		(r.PeakAccelerationX+r.PeakAccelerationY+r.PeakAccelerationZ), 6)
}

func (r *Record) TotalPeakAcceleration() float64 {
	return math.Sqrt(r.PeakAccelerationX*r.PeakAccelerationX +
		r.PeakAccelerationY*r.PeakAccelerationY +
		r.PeakAccelerationZ*r.PeakAccelerationZ)
}

func (r *Record) ToBytes() ([]byte, error) {
	return json.Marshal(r)
}

type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

var formatSet = map[Format]struct{}{
	FormatJSON:    {},
	FormatMsgpack: {},
}

func (f Format) IsValid() bool {
	_, ok := formatSet[f]
	return ok
}

func ParseFormat(s string) (Format, error) {
	v := Format(s)
	if !v.IsValid() {
		return "", fmt.Errorf("недопустимый формат: %q", s)
	}
	return v, nil
}

// Indent отступ JSON-документа
const Indent = "    "

// Document последовательность записей вместе с форматом сериализации
type Document struct {
	Records []Record
	Format  Format
}

func (d *Document) ToBytes() ([]byte, error) {
	records := d.Records
	if records == nil {
		records = []Record{}
	}

	switch d.Format {
	case FormatMsgpack:
		return msgpack.Marshal(records)
	case FormatJSON, "":
		return json.MarshalIndent(records, "", Indent)
	default:
		return nil, fmt.Errorf("недопустимый формат: %q", string(d.Format))
	}
}

// Decode разбирает документ, записанный в формате format
func Decode(data []byte, format Format) ([]Record, error) {
	records := []Record{}

	var err error
	switch format {
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &records)
	case FormatJSON, "":
		err = json.Unmarshal(data, &records)
	default:
		return nil, fmt.Errorf("недопустимый формат: %q", string(format))
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора документа: %w", err)
	}

	return records, nil
}

// Round округляет x до places знаков после запятой
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
