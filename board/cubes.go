package board

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// CubeSides is the number of faces on one letter cube. Lines in a cube
// file that do not carry exactly this many faces are skipped.
const CubeSides = 6

// ReadCubeFile reads a cube face-list file, one cube per line, and
// returns the usable cubes (lowercased face strings of length
// CubeSides).
func ReadCubeFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening cube file %v: %w", filename, err)
	}
	defer file.Close()

	var cubes []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		faces := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if len(faces) == CubeSides {
			cubes = append(cubes, faces)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading cube file %v: %w", filename, err)
	}
	log.Debug().Int("cubes", len(cubes)).Str("file", filename).Msg("read cube file")
	return cubes, nil
}

// NewRandomBoard rolls a fresh size x size board from the cubes in
// cubeFile. Each cell gets one cube, assigned in shuffled order, and
// shows one of that cube's faces at random. It returns
// ErrInvalidDimensions if size is below the minimum or the file does
// not carry size*size usable cubes.
func NewRandomBoard(size int, cubeFile string) (*Board, error) {
	cubes, err := ReadCubeFile(cubeFile)
	if err != nil {
		return nil, err
	}
	return rollBoard(size, cubes)
}

func rollBoard(size int, cubes []string) (*Board, error) {
	if size < MinBoardSize || len(cubes) < size*size {
		return nil, fmt.Errorf("%w: size %d with %d usable cubes",
			ErrInvalidDimensions, size, len(cubes))
	}
	frand.Shuffle(len(cubes), func(i, j int) {
		cubes[i], cubes[j] = cubes[j], cubes[i]
	})
	b := &Board{dim: size, letters: make([][]byte, size)}
	for r := 0; r < size; r++ {
		b.letters[r] = make([]byte, size)
		for c := 0; c < size; c++ {
			faces := cubes[r*size+c]
			b.letters[r][c] = faces[frand.Intn(len(faces))]
		}
	}
	return b, nil
}
