package document

import (
	"context"
	"net/http"

	"hrms-portal/internal/shared/apperror"
)

// Filter memetakan nama field ke nilai yang harus sama persis.
// Map kosong berarti tanpa filter.
type Filter map[string]any

var (
	// ErrUnavailable berarti koneksi store tidak pernah terbentuk.
	ErrUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Database not available",
		http.StatusServiceUnavailable,
	)

	// ErrNoDocuments berarti query satu-dokumen tidak menemukan apapun.
	ErrNoDocuments = apperror.New(
		apperror.CodeNotFound,
		"Document not found",
		http.StatusNotFound,
	)
)

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	// Insert menyimpan satu dokumen dan mengembalikan ID buatan store.
	Insert(ctx context.Context, collection string, doc any) (ID, error)

	// Find mengisi out (pointer ke slice) dengan dokumen yang cocok,
	// maksimal limit, urutan apa adanya dari store.
	Find(ctx context.Context, collection string, filter Filter, limit int64, out any) error

	// FindOne mengisi out dengan satu dokumen yang cocok,
	// atau ErrNoDocuments.
	FindOne(ctx context.Context, collection string, filter Filter, out any) error

	// UpdateOne menerapkan $set pada satu dokumen yang cocok dengan filter
	// dan mengembalikan jumlah dokumen yang match (0 atau 1).
	UpdateOne(ctx context.Context, collection string, filter Filter, set Filter) (int64, error)

	// Collections mengembalikan daftar nama koleksi di database.
	Collections(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error

	// Name mengembalikan nama database.
	Name() string
}
