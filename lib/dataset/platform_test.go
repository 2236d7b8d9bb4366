package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlatformLabel(t *testing.T) {
	require.Equal(t, "PC", PlatformLabel("PC"))
	require.Equal(t, "PC", PlatformLabel("Windows"))
	// unrecognized tags render as themselves, never an error
	require.Equal(t, "SteamDeck", PlatformLabel("SteamDeck"))
	require.Equal(t, "Unknown", PlatformLabel(""))
}
