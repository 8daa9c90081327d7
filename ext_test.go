package hawk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOpaque(t *testing.T) {
	t.Run("plain ascii ok", func(t *testing.T) {
		assert.NoError(t, checkOpaque("ext", "this is some app data"))
	})

	t.Run("newline allowed", func(t *testing.T) {
		assert.NoError(t, checkOpaque("ext", "new line \n in the middle"))
	})

	t.Run("quote allowed only in ext", func(t *testing.T) {
		assert.NoError(t, checkOpaque("ext", `quotes=""`))
		err := checkOpaque("app", `quotes=""`)
		assertKind(t, err, KindBadHeaderValue)
	})

	t.Run("backslash always forbidden", func(t *testing.T) {
		err := checkOpaque("ext", `back\slash`)
		assertKind(t, err, KindBadHeaderValue)
	})

	t.Run("tab illegal", func(t *testing.T) {
		err := checkOpaque("ext", "something like \t is illegal")
		assertKind(t, err, KindBadHeaderValue)
	})

	t.Run("non-ascii illegal", func(t *testing.T) {
		err := checkOpaque("ext", "café")
		assertKind(t, err, KindBadHeaderValue)
	})
}
