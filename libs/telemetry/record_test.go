package telemetry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	r := Record{
		CurrentTemperature: 25.3,
		CurrentSpeed:       2.78,
		CurrentCoordinates: Coordinate{Latitude: 51.123502, Longitude: 8.123456, Height: 454},
		PeakAccelerationX:  -1.25,
		PeakAccelerationY:  4.9,
		PeakAccelerationZ:  0.07,
	}
	r.Checksum = r.ExpectedChecksum()
	return r
}

func TestRecordJSONShape(t *testing.T) {
	r := sampleRecord()

	data, err := r.ToBytes()
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Len(t, fields, 7)
	for _, key := range []string{
		"current_temperature", "current_speed", "current_coordinates",
		"peak_acceleration_x", "peak_acceleration_y", "peak_acceleration_z", "checksum",
	} {
		assert.Contains(t, fields, key)
	}

	coords, ok := fields["current_coordinates"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 51.123502, coords["latitude"])
	assert.Equal(t, 8.123456, coords["longitude"])
	assert.Equal(t, float64(454), coords["height"])
}

func TestExpectedChecksum(t *testing.T) {
	r := sampleRecord()

	sum := 25.3 + 2.78 + 51.123502 + 8.123456 + 454 + (-1.25 + 4.9 + 0.07)
	assert.InDelta(t, sum, r.Checksum, 1e-6)
	assert.InDelta(t, Round(sum, 6), r.ExpectedChecksum(), 1e-9)
}

func TestTotalPeakAcceleration(t *testing.T) {
	r := Record{PeakAccelerationX: 3, PeakAccelerationY: 4, PeakAccelerationZ: 0}
	assert.InDelta(t, 5.0, r.TotalPeakAcceleration(), 1e-12)
}

func TestDocumentJSONIndent(t *testing.T) {
	doc := Document{Records: []Record{sampleRecord()}, Format: FormatJSON}

	data, err := doc.ToBytes()
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    {\n        \"current_temperature\": 25.3,")
}

func TestDocumentEmpty(t *testing.T) {
	doc := Document{Format: FormatJSON}

	data, err := doc.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	records, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDocumentRoundTrip(t *testing.T) {
	records := []Record{sampleRecord(), sampleRecord()}
	records[1].CurrentSpeed = 0
	records[1].Checksum = records[1].ExpectedChecksum()

	for _, format := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			doc := Document{Records: records, Format: format}
			data, err := doc.ToBytes()
			require.NoError(t, err)

			decoded, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, records, decoded)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("msgpack")
	assert.NoError(t, err)
	assert.Equal(t, FormatMsgpack, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)

	doc := Document{Format: Format("xml")}
	_, err = doc.ToBytes()
	assert.Error(t, err)

	_, err = Decode([]byte("[]"), Format("xml"))
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 25.3, Round(25.2999, 1))
	assert.Equal(t, 51.123502, Round(51.1235019, 6))
	assert.Equal(t, -4.99, Round(-4.9899, 2))
}
