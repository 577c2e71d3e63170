package service

import (
	"bytes"
	"fmt"
	"movie_discovery/configs"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

type IPosterService interface {
	GetPosterThumbnail(posterPath string, width int) ([]byte, error)
}

// PosterService fetches original posters from the image CDN and serves
// width-bound webp thumbnails, cached in redis.
type PosterService struct {
	httpClient   *http.Client
	imageBaseUrl string
}

func NewPosterService() *PosterService {
	return &PosterService{
		httpClient:   &http.Client{},
		imageBaseUrl: configs.GetConfigs().TmdbImageBaseUrl,
	}
}

const posterMinWidth = 92
const posterWebpQuality = 80

//------------------------------------------
//------------------------------------------

func (m *PosterService) GetPosterThumbnail(posterPath string, width int) ([]byte, error) {
	maxWidth := int(configs.GetDbConfigs().PosterMaxWidth)
	if width < posterMinWidth {
		width = posterMinWidth
	}
	if width > maxWidth {
		width = maxWidth
	}

	cacheKey := fmt.Sprintf("%d:%s", width, posterPath)
	cached, _ := getPosterCache(cacheKey)
	if cached != nil {
		return cached, nil
	}

	resp, err := m.httpClient.Get(m.imageBaseUrl + "/" + posterPath)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on fetching poster: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, model.ErrPosterNotFound
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("failed to fetch poster: %s", resp.Status)
		errorMessage := fmt.Sprintf("Error on fetching poster: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on decoding poster: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}

	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, posterWebpQuality)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, opts); err != nil {
		errorMessage := fmt.Sprintf("Error on encoding poster to webp: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}

	ttl := time.Duration(configs.GetDbConfigs().PosterCacheTtlHour) * time.Hour
	_ = setPosterCache(cacheKey, buf.Bytes(), ttl)

	return buf.Bytes(), nil
}
