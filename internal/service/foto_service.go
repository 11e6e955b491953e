package service

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	// Source photos arrive in whatever format the page served.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	"vetcrm/internal/infrastructure/aws/storage"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/apierror"
)

const (
	fotoMaxWidth   = 800
	fotoMaxHeight  = 600
	fotoQuality    = 80
	fotoFetchLimit = 20 * time.Second
)

// DefaultFotoService downloads an externally hosted photo, recompresses it
// to a bounded WebP and rehosts it in our own bucket. External hotlinks rot;
// rehosted objects do not.
type DefaultFotoService struct {
	Storage    storage.S3Client
	EstRepo    EstabelecimentoRepository
	Validate   *validator.Validate
	httpClient *http.Client
}

func NewFotoService(
	s3client storage.S3Client,
	estRepo EstabelecimentoRepository,
	validate *validator.Validate,
) *DefaultFotoService {
	return &DefaultFotoService{
		Storage:    s3client,
		EstRepo:    estRepo,
		Validate:   validate,
		httpClient: &http.Client{Timeout: fotoFetchLimit},
	}
}

func (s *DefaultFotoService) UploadFoto(actor *entity.User, req *contract.UploadFotoRequest) (*contract.UploadFotoResponse, apierror.ErrorResponse) {
	if !actor.Permissions.HasEffective(entity.PermissionManageEstabelecimentos) {
		return nil, apierror.UserMissingPermsError
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if s.Storage == nil {
		return nil, apierror.FeatureDisabledError
	}

	original, apierr := s.download(req.FotoURL)
	if apierr != nil {
		return nil, apierr
	}

	optimized, err := otimizarImagem(original)
	if err != nil {
		log.Errorf("failed to optimize photo from %s: %v", req.FotoURL, err)
		return nil, apierror.InvalidImageError
	}

	key := storage.PathFotos + uuid.NewString() + ".webp"
	if _, err = s.Storage.UploadFile(optimized, key); err != nil {
		log.Errorf("failed to upload photo %s: %v", key, err)
		return nil, apierror.InternalServerError
	}

	publicURL := s.Storage.PublicURL(key)
	if req.EstabelecimentoID != nil {
		s.persistFotoURL(actor, *req.EstabelecimentoID, publicURL)
	}

	return &contract.UploadFotoResponse{
		Success:       true,
		URL:           publicURL,
		OriginalSize:  len(original),
		OptimizedSize: len(optimized),
	}, nil
}

func (s *DefaultFotoService) download(rawURL string) ([]byte, apierror.ErrorResponse) {
	resp, err := s.httpClient.Get(rawURL)
	if err != nil {
		log.Errorf("failed to download photo from %s: %v", rawURL, err)
		return nil, apierror.NewUpstreamError("photo-download", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apierror.NewUpstreamError("photo-download", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, contract.MaxFotoDownloadBytes+1))
	if err != nil {
		log.Errorf("failed to read photo body from %s: %v", rawURL, err)
		return nil, apierror.InternalServerError
	}

	if len(data) > contract.MaxFotoDownloadBytes {
		return nil, apierror.ImageTooLargeError
	}
	return data, nil
}

// persistFotoURL is best effort: the upload already succeeded, so a failure
// to link the photo only gets logged.
func (s *DefaultFotoService) persistFotoURL(actor *entity.User, estabelecimentoID int64, publicURL string) {
	est, err := s.EstRepo.FindByID(actor.UnidadeID, estabelecimentoID)
	if err != nil || est == nil {
		log.Errorf("could not load establishment %d to link photo: %v", estabelecimentoID, err)
		return
	}

	anterior := est.FotoURL
	est.FotoURL = publicURL
	est.UpdatedAt = utils.NowUTC()
	if err = s.EstRepo.Save(est); err != nil {
		log.Errorf("failed to link photo to establishment %d: %v", estabelecimentoID, err)
		return
	}
	s.removerFotoAntiga(anterior)
}

// removerFotoAntiga drops the object the row pointed at before the replace.
// Only objects we rehosted under the photo prefix are touched; external
// hotlinks and other bucket paths stay untouched.
func (s *DefaultFotoService) removerFotoAntiga(fotoURL string) {
	prefix := s.Storage.PublicURL(storage.PathFotos)
	if fotoURL == "" || !strings.HasPrefix(fotoURL, prefix) {
		return
	}

	key := strings.TrimPrefix(fotoURL, s.Storage.PublicURL(""))
	if err := s.Storage.DeleteFile(key); err != nil {
		log.Errorf("failed to delete replaced photo %s: %v", key, err)
	}
}

// otimizarImagem decodes the source photo, bounds it to 800x600 keeping the
// aspect ratio, and re-encodes it as lossy WebP.
func otimizarImagem(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	resized := imaging.Fit(src, fotoMaxWidth, fotoMaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	err = webp.Encode(&buf, resized, &webp.Options{Quality: fotoQuality})
	if err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}
