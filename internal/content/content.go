// Package content is the fixed case shipped with the game: the mansion map, the clue found in
// each room and the suspect each clue points at.
package content

import (
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/suspects"
)

const (
	Title = "Detective Quest"
	Intro = "A mansao foi mapeada. Explore os comodos a partir do Hall de entrada, " +
		"colete as pistas e acuse o culpado."
)

// Clues found in the mansion.
const (
	ClueLibrary  = "O livro de venenos sumiu da estante."
	ClueGarden   = "Corda cortada perto da janela."
	ClueKitchen  = "Faca faltando no faqueiro."
	ClueLiving   = "Casaco com lama perto da lareira."
	ClueBedroom  = "Um mapa de fuga escondido sob o colchao."
	ClueBathroom = "Batom vermelho no espelho."
)

// Suspects of the case.
const (
	SuspectPlum    = "Prof. Plum"
	SuspectWhite   = "Sra. White"
	SuspectGreen   = "Rev. Green"
	SuspectMustard = "Cel. Mustard"
	SuspectScarlet = "Srta. Scarlet"
)

// Mansion returns a fresh blueprint of the house. Callers may keep or modify it, every call
// builds a new one.
func Mansion() *mansion.Blueprint {
	return &mansion.Blueprint{
		Name: "Hall de entrada",
		Left: &mansion.Blueprint{
			Name:  "Biblioteca",
			Clue:  ClueLibrary,
			Left:  &mansion.Blueprint{Name: "Cozinha", Clue: ClueKitchen},
			Right: &mansion.Blueprint{Name: "Jardim de Inverno", Clue: ClueGarden},
		},
		Right: &mansion.Blueprint{
			Name: "Sala de Estar",
			Clue: ClueLiving,
			Left: &mansion.Blueprint{
				Name: "Quarto Principal",
				Clue: ClueBedroom,
				Left: &mansion.Blueprint{Name: "Banheiro", Clue: ClueBathroom},
			},
		},
	}
}

// Associations returns which suspect each clue points at.
func Associations() []suspects.Entry {
	return []suspects.Entry{
		{Clue: ClueLibrary, Suspect: SuspectPlum},
		{Clue: ClueGarden, Suspect: SuspectWhite},
		{Clue: ClueKitchen, Suspect: SuspectMustard},
		{Clue: ClueLiving, Suspect: SuspectGreen},
		{Clue: ClueBedroom, Suspect: SuspectGreen},
		{Clue: ClueBathroom, Suspect: SuspectScarlet},
	}
}
