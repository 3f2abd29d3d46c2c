package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/x448/float16"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Float16, 2},
		{Int8, 1},
		{Int16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Uint16, 2},
		{Uint32, 4},
		{Uint64, 8},
		{Bool, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size(), tt.dtype.String())
	}
	assert.Panics(t, func() { DataType(99).Size() })
	assert.Equal(t, "unknown", DataType(99).String())
}

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, Float16, DataTypeOf[float16.Float16]())
	assert.Equal(t, Uint16, DataTypeOf[uint16]())
	assert.Equal(t, Int8, DataTypeOf[int8]())
	assert.Equal(t, Bool, DataTypeOf[bool]())
	assert.Equal(t, "float16", Float16.String())
}
