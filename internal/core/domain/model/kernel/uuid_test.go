package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastroute/internal/core/domain/model/kernel"
)

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	assert.NoError(t, id1.Validate())
	assert.NoError(t, id2.Validate())
	assert.False(t, id1.IsEqual(id2), "two generated UUIDs must differ")
}

func TestUUIDFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid UUID",
			input: "550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "valid UUID with braces",
			input: "{550e8400-e29b-41d4-a716-446655440000}",
		},
		{
			name:    "invalid format",
			input:   "not-a-uuid",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
			}
		})
	}
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round trip via bytes", func(t *testing.T) {
		original := kernel.NewUUID()

		raw := original.Bytes()
		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)

		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})
		assert.Error(t, err)
	})

	t.Run("nil UUID bytes rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		assert.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed UUID", func(t *testing.T) {
		id := kernel.NewUUID()
		assert.NoError(t, id.Validate())
	})

	t.Run("zero value UUID", func(t *testing.T) {
		var id kernel.UUID
		err := id.Validate()
		assert.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := id1
	id3 := kernel.NewUUID()

	assert.True(t, id1.IsEqual(id2))
	assert.False(t, id1.IsEqual(id3))
}
