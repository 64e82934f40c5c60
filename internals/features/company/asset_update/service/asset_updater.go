package service

import (
	"context"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"

	"apgi_backend/internals/helpers/uploads"
)

// Slot satu field gambar pada baris singleton (logo, gambar_bagan, favicon, ...).
//
//	Current  : path yang tersimpan sekarang
//	File     : file baru dari multipart (boleh nil)
//	Supplied : URL dari form kalau tidak ada file (nil = tidak dikirim)
//
// Setelah Resolve/Apply, Path berisi nilai yang harus dipersist.
type Slot struct {
	Field    string
	File     *multipart.FileHeader
	Current  string
	Supplied *string

	Path     string
	uploaded bool
}

func (s *Slot) Uploaded() bool { return s.uploaded }

type AssetUpdater struct {
	store *uploads.Store
	log   *zap.Logger
}

func NewAssetUpdater(store *uploads.Store, log *zap.Logger) *AssetUpdater {
	return &AssetUpdater{store: store, log: log.Named("asset_update")}
}

/*
Apply menjalankan alur update baris yang punya field gambar:

 1. semua file divalidasi dulu (Accept) sebelum ada yang ditulis
 2. file ditulis, Path tiap slot diisi
 3. persist dipanggil (biasanya satu upsert)
 4. persist gagal → file baru dihapus (sinkron), error diteruskan
 5. sukses → file lama yang tergantikan upload dihapus async
*/
func (u *AssetUpdater) Apply(ctx context.Context, slots []*Slot, persist func(ctx context.Context) error) error {
	accepted := make([]*uploads.Accepted, len(slots))
	for i, s := range slots {
		if s.File == nil {
			continue
		}
		a, err := u.store.Accept(s.Field, s.File)
		if err != nil {
			return err
		}
		accepted[i] = a
	}

	var written []string
	for i, s := range slots {
		if accepted[i] == nil {
			s.Path = s.Current
			if s.Supplied != nil {
				s.Path = strings.TrimSpace(*s.Supplied)
			}
			continue
		}
		p, err := u.store.Save(accepted[i])
		if err != nil {
			u.undo(written)
			return err
		}
		s.Path = p
		s.uploaded = true
		written = append(written, p)
	}

	if err := persist(ctx); err != nil {
		u.undo(written)
		return err
	}

	for _, s := range slots {
		if s.uploaded && s.Current != "" && s.Current != s.Path {
			u.store.DeleteAsync(s.Current)
		}
	}
	return nil
}

func (u *AssetUpdater) undo(paths []string) {
	for _, p := range paths {
		if err := u.store.Delete(p); err != nil {
			u.log.Warn("gagal hapus upload baru setelah rollback", zap.String("path", p), zap.Error(err))
		}
	}
}
