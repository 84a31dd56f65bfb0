// Package localstore implementa la persistencia del sistema: un único documento
// JSON en disco que contiene categorías, productos, movimientos, auditoría y
// usuarios. Cada mutación lee-modifica-escribe el documento completo y lo
// reemplaza de forma atómica (archivo temporal + rename).
//
// Concurrencia: dentro del proceso un RWMutex serializa las operaciones; entre
// procesos que comparten el archivo se usa concurrencia optimista: el documento
// lleva un contador de versión y una escritura que encuentra en disco una
// versión distinta a la última observada falla con ErrStaleDocument en lugar de
// pisar silenciosamente los cambios del otro escritor.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// Store documento de inventario respaldado por un archivo JSON.
type Store struct {
	mu   sync.RWMutex
	path string
	doc  *entity.Document
	// versión que este proceso escribió (o leyó) por última vez en disco
	diskVersion uint64
}

// Open carga el documento desde path, o inicia uno vacío si el archivo no existe.
func Open(path string) (*Store, error) {
	s := &Store{path: path, doc: entity.NewDocument()}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("leer documento %s: %w", path, err)
	}
	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsear documento %s: %w", path, err)
	}
	normalize(&doc)
	s.doc = &doc
	s.diskVersion = doc.Version
	return s, nil
}

// Path devuelve la ruta del archivo de respaldo.
func (s *Store) Path() string { return s.path }

// View ejecuta fn con acceso de solo lectura al documento.
func (s *Store) View(fn func(doc *entity.Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.doc)
}

// Update ejecuta fn sobre una copia del documento. Si fn retorna error la copia
// se descarta y el documento queda en su último estado confirmado; si no,
// incrementa la versión, persiste y recién entonces publica la copia.
func (s *Store) Update(fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.doc.Clone()
	if err := fn(staged); err != nil {
		return err
	}
	staged.Version = s.doc.Version + 1
	staged.LastUpdated = time.Now()
	if err := s.persistLocked(staged); err != nil {
		return err
	}
	s.doc = staged
	s.diskVersion = staged.Version
	return nil
}

// persistLocked escribe el documento en disco. Requiere s.mu en modo escritura.
func (s *Store) persistLocked(doc *entity.Document) error {
	// Detección de escritor concurrente: si la versión en disco no es la última
	// que observamos, otro proceso escribió el archivo desde entonces.
	onDisk, err := readDiskVersion(s.path)
	if err != nil {
		return err
	}
	if onDisk != s.diskVersion {
		return domain.ErrStaleDocument
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".inventario-*.json")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir documento: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazar documento: %w", err)
	}
	return nil
}

// readDiskVersion lee solo el campo version del archivo; 0 si no existe.
func readDiskVersion(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("leer versión en disco: %w", err)
	}
	var header struct {
		Version uint64 `json:"version"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return 0, fmt.Errorf("parsear versión en disco: %w", err)
	}
	return header.Version, nil
}

// normalize garantiza slices no nulos tras deserializar documentos antiguos.
func normalize(doc *entity.Document) {
	if doc.Categories == nil {
		doc.Categories = []entity.Category{}
	}
	if doc.Products == nil {
		doc.Products = []entity.Product{}
	}
	if doc.Movements == nil {
		doc.Movements = []entity.Movement{}
	}
	if doc.AuditLog == nil {
		doc.AuditLog = []entity.AuditEntry{}
	}
	if doc.Users == nil {
		doc.Users = []entity.User{}
	}
}

// Snapshot devuelve una copia profunda del documento actual.
func (s *Store) Snapshot() (*entity.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone(), nil
}

// Restore reemplaza el contenido del documento con doc. La versión del store
// sigue su secuencia normal (nunca retrocede a la versión importada).
func (s *Store) Restore(doc *entity.Document) error {
	return s.Update(func(d *entity.Document) error {
		src := doc.Clone()
		normalize(src)
		d.Categories = src.Categories
		d.Products = src.Products
		d.Movements = src.Movements
		d.AuditLog = src.AuditLog
		if len(src.Users) > 0 {
			d.Users = src.Users
		}
		return nil
	})
}
