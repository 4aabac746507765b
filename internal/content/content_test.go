package content_test

import (
	"testing"

	"github.com/myrjola/detectivequest/internal/content"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/stretchr/testify/require"
)

func TestMansion_builds(t *testing.T) {
	root, err := mansion.Build(content.Mansion())
	require.NoError(t, err)

	var names []string
	mansion.Walk(root, func(_ int, room *mansion.Room) bool {
		names = append(names, room.Name())
		return true
	})
	require.Equal(t, []string{
		"Hall de entrada",
		"Biblioteca",
		"Cozinha",
		"Jardim de Inverno",
		"Sala de Estar",
		"Quarto Principal",
		"Banheiro",
	}, names)
}

func TestMansion_everyClueHasASuspect(t *testing.T) {
	associated := make(map[string]string)
	for _, e := range content.Associations() {
		_, duplicate := associated[e.Clue]
		require.False(t, duplicate, "clue %q is associated twice", e.Clue)
		associated[e.Clue] = e.Suspect
	}

	root, err := mansion.Build(content.Mansion())
	require.NoError(t, err)
	clues := 0
	mansion.Walk(root, func(_ int, room *mansion.Room) bool {
		if clue, ok := room.TakeClue(); ok {
			clues++
			require.Contains(t, associated, clue, "room %s", room.Name())
		}
		return true
	})
	require.Equal(t, len(associated), clues)
}

func TestMansion_freshCopies(t *testing.T) {
	first := content.Mansion()
	first.Left.Clue = ""
	require.Equal(t, content.ClueLibrary, content.Mansion().Left.Clue)
}
