package contract

// MaxFotoDownloadBytes caps how large a source image we are willing to pull.
const MaxFotoDownloadBytes = 15 * 1024 * 1024

type UploadFotoRequest struct {
	FotoURL           string `json:"fotoUrl" validate:"required,url"`
	EstabelecimentoID *int64 `json:"estabelecimentoId" validate:"omitempty,min=1"`
}

type UploadFotoResponse struct {
	Success       bool   `json:"success"`
	URL           string `json:"url"`
	OriginalSize  int    `json:"originalSize"`
	OptimizedSize int    `json:"optimizedSize"`
}
