package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestBin2HexCommand(t *testing.T) {
	t.Run("default format", func(t *testing.T) {
		out, err := executeCommand(t, "bin2hex", "🍣")
		require.NoError(t, err)
		assert.Equal(t, "F09F8DA3\n", out)
	})

	t.Run("spaced lowercase", func(t *testing.T) {
		out, err := executeCommand(t, "bin2hex", "--format", "spaced", "--lower", "🍣")
		require.NoError(t, err)
		assert.Equal(t, "f0 9f 8d a3\n", out)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := executeCommand(t, "bin2hex", "--format", "nope", "--lower=false", "x")
		assert.Error(t, err)
	})
}

func TestHex2BinCommand(t *testing.T) {
	t.Run("spaced input", func(t *testing.T) {
		out, err := executeCommand(t, "hex2bin", "F0 9F 8D A3")
		require.NoError(t, err)
		assert.Equal(t, "🍣\n", out)
	})

	t.Run("odd length fails", func(t *testing.T) {
		_, err := executeCommand(t, "hex2bin", "F0F")
		assert.Error(t, err)
	})
}

func TestEscapeCommands(t *testing.T) {
	t.Run("default format", func(t *testing.T) {
		out, err := executeCommand(t, "escape", "A")
		require.NoError(t, err)
		assert.Equal(t, `\u{41}`+"\n", out)
	})

	t.Run("unescape round trip", func(t *testing.T) {
		out, err := executeCommand(t, "unescape", `\u{1F363}`)
		require.NoError(t, err)
		assert.Equal(t, "🍣\n", out)
	})
}

func TestScrubCommand(t *testing.T) {
	out, err := executeCommand(t, "scrub", "--input-format", "hex", "61 FF 62")
	require.NoError(t, err)
	assert.Equal(t, "a�b\n", out)
}

func TestOrdChrCommands(t *testing.T) {
	t.Run("ord", func(t *testing.T) {
		out, err := executeCommand(t, "ord", "あ🍣")
		require.NoError(t, err)
		assert.Equal(t, "0x3042 0x1F363\n", out)
	})

	t.Run("chr", func(t *testing.T) {
		out, err := executeCommand(t, "chr", "0x3042", "1F363")
		require.NoError(t, err)
		assert.Equal(t, "あ🍣\n", out)
	})

	t.Run("chr rejects out of range", func(t *testing.T) {
		_, err := executeCommand(t, "chr", "0x110000")
		assert.Error(t, err)
	})
}

func TestSegmentCommands(t *testing.T) {
	t.Run("iter graphemes", func(t *testing.T) {
		out, err := executeCommand(t, "iter", "が🍣")
		require.NoError(t, err)
		assert.Equal(t, "が\n🍣\n", out)
	})

	t.Run("len counts clusters", func(t *testing.T) {
		out, err := executeCommand(t, "len", "👨‍💻")
		require.NoError(t, err)
		assert.Equal(t, "1\n", out)
	})

	t.Run("take prefix", func(t *testing.T) {
		out, err := executeCommand(t, "take", "2", "sushi")
		require.NoError(t, err)
		assert.Equal(t, "su\n", out)
	})

	t.Run("drop clamps", func(t *testing.T) {
		out, err := executeCommand(t, "drop", "99", "sushi")
		require.NoError(t, err)
		assert.Equal(t, "\n", out)
	})

	t.Run("take rejects bad count", func(t *testing.T) {
		_, err := executeCommand(t, "take", "--", "-1", "sushi")
		assert.Error(t, err)
	})
}

func TestDumpCommand(t *testing.T) {
	out, err := executeCommand(t, "dump", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "U+0061")
	assert.Contains(t, out, "LATIN SMALL LETTER A")
}
