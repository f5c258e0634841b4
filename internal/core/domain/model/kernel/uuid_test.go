package kernel_test

import (
	"testing"

	"comandas/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const grillStationID = "7b8e04d1-3f2a-4c96-b1d5-9a0e6c4f2d18"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("should never collide for distinct orders", func(t *testing.T) {
		orderID := kernel.NewUUID()
		stationID := kernel.NewUUID()

		assert.False(t, orderID.IsEqual(stationID))
		assert.NotEqual(t, orderID.String(), stationID.String())
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse a canonical identifier", func(t *testing.T) {
		id, err := kernel.UUIDFromString(grillStationID)

		require.NoError(t, err)
		assert.Equal(t, grillStationID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should normalize alternate encodings", func(t *testing.T) {
		// Clients may send IDs in any of the forms google/uuid accepts.
		encodings := []string{
			"{7b8e04d1-3f2a-4c96-b1d5-9a0e6c4f2d18}",
			"urn:uuid:7b8e04d1-3f2a-4c96-b1d5-9a0e6c4f2d18",
			"7b8e04d13f2a4c96b1d59a0e6c4f2d18",
		}

		for _, encoding := range encodings {
			id, err := kernel.UUIDFromString(encoding)

			require.NoError(t, err, "input: %s", encoding)
			assert.Equal(t, grillStationID, id.String())
		}
	})

	t.Run("should reject malformed identifiers", func(t *testing.T) {
		malformed := []string{
			"",
			"parrilla",
			"comanda-42",
			"7b8e04d1-3f2a-4c96-b1d5",
			"7b8e04d1-3f2a-4c96-b1d5-9a0e6c4f2d18-extra",
			"zz8e04d1-3f2a-4c96-b1d5-9a0e6c4f2d18",
		}

		for _, input := range malformed {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	stationBytes := []byte{
		0x7b, 0x8e, 0x04, 0xd1, 0x3f, 0x2a, 0x4c, 0x96,
		0xb1, 0xd5, 0x9a, 0x0e, 0x6c, 0x4f, 0x2d, 0x18,
	}

	t.Run("should rebuild an identifier from its raw bytes", func(t *testing.T) {
		id, err := kernel.UUIDFromBytes(stationBytes)

		require.NoError(t, err)
		assert.Equal(t, grillStationID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should reject truncated bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(stationBytes[:5])

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the all-zero identifier", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should expose the underlying value without sharing state", func(t *testing.T) {
		id, err := kernel.UUIDFromString(grillStationID)
		require.NoError(t, err)

		raw := id.Bytes()
		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, grillStationID, raw.String())

		// Mutating the copy must not corrupt the identifier.
		for i := range raw {
			raw[i] = 0xFF
		}
		assert.Equal(t, grillStationID, id.String())
		assert.NoError(t, id.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should match identifiers parsed from the same string", func(t *testing.T) {
		fromOrder, _ := kernel.UUIDFromString(grillStationID)
		fromEvent, _ := kernel.UUIDFromString(grillStationID)

		assert.True(t, fromOrder.IsEqual(fromEvent))
		assert.True(t, fromEvent.IsEqual(fromOrder))
	})

	t.Run("should treat two zero values as equal", func(t *testing.T) {
		var a, b kernel.UUID

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should reject an identifier that skipped its constructor", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})

	t.Run("should reject the nil identifier even when parsed", func(t *testing.T) {
		id, _ := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})

	t.Run("should catch an aggregate built without its constructor", func(t *testing.T) {
		// IDs are embedded in aggregates as plain fields; Validate is the
		// only thing standing between a zero-value struct and the database.
		type comanda struct {
			ID kernel.UUID
		}

		var missing comanda
		assert.Error(t, missing.ID.Validate())

		built := comanda{ID: kernel.NewUUID()}
		assert.NoError(t, built.ID.Validate())
	})
}
