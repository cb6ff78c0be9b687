package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/arloliu/rechenmodul/format"
	"github.com/arloliu/rechenmodul/samplecodec"
	"github.com/arloliu/rechenmodul/store"
)

// TokenHandler exports and imports the session sample as a token.
type TokenHandler struct {
	store       *store.Store
	encoding    format.EncodingType
	compression format.CompressionType
}

// NewTokenHandler creates a TokenHandler writing tokens with the given payload
// encoding and compression. Import accepts any encoding and compression.
func NewTokenHandler(s *store.Store, encoding format.EncodingType, compression format.CompressionType) *TokenHandler {
	return &TokenHandler{store: s, encoding: encoding, compression: compression}
}

// TokenRequest is the body of POST /api/v1/token.
type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *TokenHandler) maxPoints() samplecodec.Option {
	return samplecodec.WithMaxPoints(h.store.Limits().MaxSampleSize)
}

// Export handles GET /api/v1/token
func (h *TokenHandler) Export(c *gin.Context) {
	sample := h.store.Sample()
	token, err := samplecodec.EncodeToken(sample,
		samplecodec.WithEncoding(h.encoding),
		samplecodec.WithCompression(h.compression),
		h.maxPoints(),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	success(c, gin.H{
		"token":       token,
		"points":      len(sample),
		"encoding":    h.encoding.String(),
		"compression": h.compression.String(),
	})
}

// Import handles POST /api/v1/token
func (h *TokenHandler) Import(c *gin.Context) {
	var req TokenRequest
	if !bindJSON(c, &req) {
		return
	}

	sample, err := samplecodec.DecodeToken(req.Token, h.maxPoints())
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.Set(sample); err != nil {
		respondError(c, err)
		return
	}

	success(c, gin.H{"points": h.store.Points(), "version": h.store.Version()})
}
