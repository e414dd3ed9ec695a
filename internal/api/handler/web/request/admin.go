package request

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/jarana/guia/internal/domain"
)

const (
	// Letters, digits, dots and underscores, at most 30, no ".." and no trailing dot.
	instagramHandlePattern = `^(?!.*\.\.)(?!.*\.$)[A-Za-z0-9._]{1,30}$`
	whatsAppPattern        = `^\d{6,15}$`
	orderPattern           = `^-?\d{1,6}$`
	imageURLPattern        = `^(?i)https?://`
)

var (
	errInvalidInstagram = errors.New("the instagram handle may only contain letters, numbers, dots and underscores")
	errInvalidID        = errors.New("id must be a positive number")
	errImageTooLarge    = errors.New("the image is too large")

	instagramHandleExp = regexp2.MustCompile(instagramHandlePattern, regexp2.None)
	instagramPrefixes  = []string{
		"https://www.instagram.com/",
		"https://instagram.com/",
		"http://www.instagram.com/",
		"http://instagram.com/",
		"www.instagram.com/",
		"instagram.com/",
		"@",
	}
	whatsAppCleaner = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "")
)

// MutationRequest carries the fields every admin panel form posts.
type MutationRequest struct {
	Tag   string `form:"tipo"`
	Table string `form:"tabla"`
	ID    string `form:"id"`
}

// ParseID returns the target record of a toggle or delete.
func (req *MutationRequest) ParseID() (uint, error) {
	return ParseID(req.ID)
}

type SiteConfigRequest struct {
	HeaderText      string `form:"texto_header"`
	FooterText      string `form:"texto_footer"`
	LastUpdatedText string `form:"texto_actualizacion"`
}

func (req *SiteConfigRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.HeaderText, validation.Length(0, 200)),
		validation.Field(&req.FooterText, validation.Length(0, 200)),
		validation.Field(&req.LastUpdatedText, validation.Length(0, 200)),
	)
}

func (req *SiteConfigRequest) ToDomain() domain.SiteConfig {
	return domain.SiteConfig{
		HeaderText:      req.HeaderText,
		FooterText:      req.FooterText,
		LastUpdatedText: req.LastUpdatedText,
	}
}

type PromoterRequest struct {
	Locality  string `form:"localidad"`
	Name      string `form:"nombre"`
	ImageURL  string `form:"foto_url"`
	Instagram string `form:"instagram"`
	WhatsApp  string `form:"whatsapp"`
	Order     string `form:"orden"`
}

func (req *PromoterRequest) normalize() {
	req.Locality = strings.TrimSpace(req.Locality)
	req.Name = strings.TrimSpace(req.Name)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	req.Instagram = normalizeInstagram(req.Instagram)
	req.WhatsApp = normalizeWhatsApp(req.WhatsApp)
	req.Order = strings.TrimSpace(req.Order)
}

func (req *PromoterRequest) Validate() error {
	req.normalize()

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Locality, validation.Length(0, 100)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.ImageURL, validation.Length(0, 500), is.RequestURL, validation.Match(regexp.MustCompile(imageURLPattern))),
		validation.Field(&req.Instagram, validation.Length(0, 200), validation.By(instagramRule)),
		validation.Field(&req.WhatsApp, validation.Match(regexp.MustCompile(whatsAppPattern))),
		validation.Field(&req.Order, validation.Match(regexp.MustCompile(orderPattern))),
	)
}

// ToDomain must be called after Validate.
func (req *PromoterRequest) ToDomain(upload *domain.ImageUpload) domain.PromoterInput {
	return domain.PromoterInput{
		Locality:  req.Locality,
		Name:      req.Name,
		ImageURL:  req.ImageURL,
		Upload:    upload,
		Instagram: req.Instagram,
		WhatsApp:  req.WhatsApp,
		Order:     parseOrder(req.Order),
	}
}

type TransportRequest struct {
	City        string `form:"ciudad"`
	TaxiName    string `form:"nombre_taxi"`
	Owner       string `form:"dueno"`
	Description string `form:"descripcion"`
	Price       string `form:"precio"`
	WhatsApp    string `form:"whatsapp"`
	Order       string `form:"orden"`
}

func (req *TransportRequest) normalize() {
	req.City = strings.TrimSpace(req.City)
	req.TaxiName = strings.TrimSpace(req.TaxiName)
	req.Owner = strings.TrimSpace(req.Owner)
	req.Description = strings.TrimSpace(req.Description)
	req.Price = strings.TrimSpace(req.Price)
	req.WhatsApp = normalizeWhatsApp(req.WhatsApp)
	req.Order = strings.TrimSpace(req.Order)
}

func (req *TransportRequest) Validate() error {
	req.normalize()

	return validation.ValidateStruct(
		req,
		validation.Field(&req.City, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.TaxiName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Owner, validation.Length(0, 100)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.Price, validation.Length(0, 50)),
		validation.Field(&req.WhatsApp, validation.Match(regexp.MustCompile(whatsAppPattern))),
		validation.Field(&req.Order, validation.Match(regexp.MustCompile(orderPattern))),
	)
}

// ToDomain must be called after Validate.
func (req *TransportRequest) ToDomain() domain.TransportInput {
	return domain.TransportInput{
		City:        req.City,
		TaxiName:    req.TaxiName,
		Owner:       req.Owner,
		Description: req.Description,
		Price:       req.Price,
		WhatsApp:    req.WhatsApp,
		Order:       parseOrder(req.Order),
	}
}

func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}

	return uint(id), nil
}

// ImageUpload reads the optional picture posted in field. It returns nil when
// no file was chosen.
func ImageUpload(ctx *gin.Context, field string, maxBytes int64) (*domain.ImageUpload, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if fh.Filename == "" || fh.Size == 0 {
		return nil, nil
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, errImageTooLarge
	}

	data, err := readFileHeader(fh)
	if err != nil {
		return nil, fmt.Errorf("readFileHeader -> %w", err)
	}

	return &domain.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func instagramRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	ok, err := instagramHandleExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidInstagram
	}

	return nil
}

func normalizeInstagram(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range instagramPrefixes {
		if strings.HasPrefix(strings.ToLower(s), prefix) {
			s = s[len(prefix):]
			break
		}
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSuffix(s, "/")
}

func normalizeWhatsApp(s string) string {
	return whatsAppCleaner.Replace(strings.TrimSpace(s))
}

func parseOrder(s string) *int {
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &n
}
