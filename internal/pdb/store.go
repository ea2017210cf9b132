package pdb

import (
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ErrPDBMissing and ErrPDBCorrupt are the two load failure conditions
// named by the error handling design: an absent file and a file whose
// decompressed size doesn't match what the caller expects.
var (
	ErrPDBMissing = errors.New("pdb file missing")
	ErrPDBCorrupt = errors.New("pdb file corrupt")
)

// Filenames for the four on-disk databases.
const (
	CornerFile    = "rubik_corner_db"
	AllEdgeFile   = "rubik_alledge_db"
	EdgeSplit0File = "rubik_edge1_DFS_12p7_db"
	EdgeSplit1File = "rubik_edge2_DFS_12p7_db"
)

// Store is a read-only, random-access depth table. It carries no lock:
// once loaded it is never written again, so concurrent readers from every
// search worker need no synchronisation.
type Store struct {
	depths []byte
	mapped bool
}

// NewStore wraps an already-built depth table without a round trip through
// disk. Tests use it to get a Store over a synthetic table; the CLI loads
// its tables with Load or LoadMmap instead.
func NewStore(depths []byte) *Store {
	return &Store{depths: depths}
}

// Get returns the recorded depth for key. Callers key into the right
// table with KeyCorner/KeyAllEdges/KeyEdgeSplit; Get itself does no bounds
// translation.
func (s *Store) Get(key uint64) byte {
	return s.depths[key]
}

// Len reports the table's entry count.
func (s *Store) Len() int {
	return len(s.depths)
}

// Close unmaps the backing memory if the store was memory-mapped; a no-op
// otherwise.
func (s *Store) Close() error {
	if !s.mapped {
		return nil
	}
	return unix.Munmap(s.depths)
}

// Save writes depths to path as a snappy-framed stream. The framed
// (as opposed to block) format lets Save/Load stream hundreds of millions
// of bytes without holding a second full-size compressed copy in memory.
func Save(path string, depths []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating pdb file %s", path)
	}
	defer f.Close()

	w := snappy.NewBufferedWriter(f)
	if _, err := w.Write(depths); err != nil {
		return errors.Wrapf(err, "writing pdb file %s", path)
	}
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "flushing pdb file %s", path)
	}
	return nil
}

// Load reads a snappy-framed depth table of exactly size bytes from path,
// resets the solved-state cell to 0 (the builders already store 0 there),
// and returns a heap-backed Store.
func Load(path string, size int, solvedKey uint64) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrPDBMissing, "%s", path)
		}
		return nil, errors.Wrapf(err, "opening pdb file %s", path)
	}
	defer f.Close()

	depths := make([]byte, size)
	r := snappy.NewReader(f)
	if _, err := io.ReadFull(r, depths); err != nil {
		return nil, errors.Wrapf(ErrPDBCorrupt, "%s: %v", path, err)
	}
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n > 0 {
		return nil, errors.Wrapf(ErrPDBCorrupt, "%s: more than %d bytes", path, size)
	}
	resetSolvedSentinel(depths, solvedKey)
	return &Store{depths: depths}, nil
}

// Decompress reads a snappy-framed file at src and writes its raw bytes to
// dst, for callers that want to memory-map a database rather than hold a
// heap copy: Mmap needs a file whose contents already are the dense byte
// array, since mmap cannot decompress on the fly.
func Decompress(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening pdb file %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "creating raw pdb file %s", dst)
	}
	defer out.Close()

	if _, err := io.Copy(out, snappy.NewReader(in)); err != nil {
		return errors.Wrapf(err, "decompressing pdb file %s", src)
	}
	return nil
}

// LoadMmap memory-maps a previously-decompressed raw depth table (see
// Decompress). The mapping is PROT_READ/MAP_SHARED -- shared read-only
// across every search worker in the same process -- so unlike Load it
// cannot normalise a construction sentinel in place; it instead verifies
// the solved-state cell already holds 0, which every table the builder
// produces does by construction.
func LoadMmap(path string, size int, solvedKey uint64) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrPDBMissing, "%s", path)
		}
		return nil, errors.Wrapf(err, "opening raw pdb file %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "statting raw pdb file %s", path)
	}
	if info.Size() != int64(size) {
		return nil, errors.Wrapf(ErrPDBCorrupt, "%s: size %d, want %d", path, info.Size(), size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "mmapping raw pdb file %s", path)
	}
	if data[solvedKey] != 0 {
		unix.Munmap(data)
		return nil, errors.Wrapf(ErrPDBCorrupt, "%s: solved-state cell holds %d, want 0", path, data[solvedKey])
	}
	return &Store{depths: data, mapped: true}, nil
}

// resetSolvedSentinel clears the construction sentinel at the solved-state
// key: a correctly built table stores 0 there, but the on-disk minimum
// (255 if the cell was never independently visited, which BFS from solved
// never leaves true) is normalised back to 0 on load regardless.
func resetSolvedSentinel(depths []byte, solvedKey uint64) {
	depths[solvedKey] = 0
}
