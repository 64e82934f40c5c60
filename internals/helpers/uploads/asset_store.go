package uploads

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// PublicPrefix: path publik tempat direktori upload disajikan sebagai static.
	PublicPrefix = "/uploads/"

	MaxFileSize int64 = 5 * 1024 * 1024
)

/*
Store menyimpan gambar upload di satu direktori lokal.

- Accept: validasi ukuran + tipe (sniff dari isi file, bukan header client)
- Save:   tulis atomik (temp + rename) dengan nama unik, return "/uploads/<nama>"
- Delete: hapus berdasarkan public path; file yang sudah tidak ada bukan error
*/
type Store struct {
	dir    string
	maxDim int
	log    *zap.Logger
	now    func() time.Time

	pending sync.WaitGroup
}

// NewStore membuat direktori upload kalau belum ada.
// maxDim > 0 mengaktifkan resize gambar raster yang lebih besar dari batas.
func NewStore(dir string, maxDim int, log *zap.Logger) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		dir:    abs,
		maxDim: maxDim,
		log:    log.Named("uploads"),
		now:    time.Now,
	}, nil
}

func (s *Store) Dir() string { return s.dir }

// Accepted adalah file yang sudah lolos validasi dan siap ditulis.
type Accepted struct {
	Field string
	Ext   string
	MIME  string
	data  []byte
}

func (a *Accepted) Size() int { return len(a.data) }

func (s *Store) Accept(field string, fh *multipart.FileHeader) (*Accepted, error) {
	if fh == nil {
		return nil, &UploadError{Field: field, Err: errors.New("file tidak ditemukan")}
	}
	if fh.Size > MaxFileSize {
		return nil, &UploadError{Field: field, Err: ErrFileTooLarge}
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file %s: %w", field, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("gagal membaca file %s: %w", field, err)
	}
	if int64(len(data)) > MaxFileSize {
		return nil, &UploadError{Field: field, Err: ErrFileTooLarge}
	}
	if len(data) == 0 {
		return nil, &UploadError{Field: field, Err: ErrNotImage}
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, &UploadError{Field: field, Err: ErrNotImage}
	}

	ext := cleanExt(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = mt.Extension()
	}
	return &Accepted{Field: field, Ext: ext, MIME: mt.String(), data: data}, nil
}

// Save menulis file yang sudah di-Accept dan mengembalikan public path-nya.
func (s *Store) Save(a *Accepted) (string, error) {
	data := a.data
	if s.maxDim > 0 {
		resized, err := fitWithin(data, a.Ext, s.maxDim)
		switch {
		case err != nil:
			s.log.Warn("resize gagal, simpan file asli", zap.String("field", a.Field), zap.Error(err))
		case resized != nil:
			data = resized
		}
	}

	name := s.generateName(a.Field, a.Ext)
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("gagal membuat file upload: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("gagal menulis file upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("gagal menulis file upload: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("gagal menulis file upload: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("gagal menyimpan file upload: %w", err)
	}

	s.log.Debug("file tersimpan", zap.String("field", a.Field), zap.String("name", name), zap.Int("bytes", len(data)))
	return PublicPrefix + name, nil
}

// Resolve mengubah public path jadi lokasi file di disk. Path di luar prefix
// (URL lama / asing) di-resolve lewat basename saja.
func (s *Store) Resolve(publicPath string) (string, bool) {
	p := strings.TrimSpace(publicPath)
	if p == "" {
		return "", false
	}
	if strings.Contains(p, "://") {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	}

	var name string
	if strings.HasPrefix(p, PublicPrefix) {
		name = path.Base(strings.TrimPrefix(p, PublicPrefix))
	} else {
		name = path.Base(filepath.ToSlash(p))
	}
	switch name {
	case "", ".", "..", "/":
		return "", false
	}
	return filepath.Join(s.dir, name), true
}

// Delete idempotent: file yang tidak ada dianggap sudah terhapus.
func (s *Store) Delete(publicPath string) error {
	full, ok := s.Resolve(publicPath)
	if !ok {
		return nil
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// DeleteAsync menghapus di goroutine terpisah; gagal hanya di-log.
func (s *Store) DeleteAsync(publicPath string) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.Delete(publicPath); err != nil {
			s.log.Warn("gagal hapus file lama", zap.String("path", publicPath), zap.Error(err))
			return
		}
		s.log.Debug("file lama dihapus", zap.String("path", publicPath))
	}()
}

// Wait menunggu semua DeleteAsync selesai.
func (s *Store) Wait() {
	s.pending.Wait()
}

var (
	unsafeFieldRe = regexp.MustCompile(`[^a-zA-Z0-9_\-]+`)
	validExtRe    = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)
)

func (s *Store) generateName(field, ext string) string {
	prefix := unsafeFieldRe.ReplaceAllString(field, "_")
	if prefix == "" {
		prefix = "file"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s-%d-%s%s", prefix, s.now().UnixMilli(), suffix, ext)
}

func cleanExt(ext string) string {
	ext = strings.ToLower(ext)
	if !validExtRe.MatchString(ext) {
		return ""
	}
	return ext
}
