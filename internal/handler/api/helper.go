package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	reqdto "hotel-portal/internal/handler/dto/request"
	"hotel-portal/internal/handler/httperr"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

const (
	mainImageField       = "mainImage"
	additionalImageField = "additionalImages"
	imagesField          = "images"
	passportField        = "passport"
)

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

// pathID parses the numeric path parameter name and answers 422 when it is
// not a positive number.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := reqdto.ParseID(c.Param(name))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return 0, false
	}
	return id, true
}

// bindJSONPart decodes the JSON carried in the multipart field name.
func bindJSONPart(c *gin.Context, name string, out any) error {
	raw := c.PostForm(name)
	if raw == "" {
		return fmt.Errorf("multipart field %q is missing", name)
	}
	return json.Unmarshal([]byte(raw), out)
}

func readFile(fh *multipart.FileHeader) (backend.File, error) {
	f, err := fh.Open()
	if err != nil {
		return backend.File{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return backend.File{}, err
	}
	return backend.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// readFiles returns the files uploaded under field. A request without
// multipart data yields none.
func readFiles(c *gin.Context, field string) ([]backend.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	headers := form.File[field]
	files := make([]backend.File, 0, len(headers))
	for _, fh := range headers {
		f, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func readImages(c *gin.Context) (backend.Images, error) {
	var images backend.Images
	main, err := readFiles(c, mainImageField)
	if err != nil {
		return images, err
	}
	if len(main) > 0 {
		images.Main = &main[0]
	}
	images.Additional, err = readFiles(c, additionalImageField)
	return images, err
}

// sendDocument streams a backend document as a download.
func sendDocument(c *gin.Context, doc readmodel.DocumentRM) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
