// Attachment endpoints.
//
//   - POST /uploads         (multipart upload, returns the stored name)
//   - GET  /uploads/{name}  (serve a stored attachment)
//
// Grievances accept images and PDFs; community posts are images only, chosen
// with ?kind=image at upload time.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/uploads"
)

// UploadResponse returns the opaque stored name to reference from a
// complaint, post, or announcement.
type UploadResponse struct {
	Name string `json:"name" example:"2f1e8a67-9a71-4cbe-a1a8-9cbb1f3ec1d4.jpg"`
}

// Upload godoc
// @ID          uploadAttachment
// @Summary     Upload an attachment
// @Description Stores one file (jpg, jpeg, png, or pdf; 5 MiB cap) and returns its opaque stored name. Pass kind=image to restrict to images.
// @Tags        Uploads
// @Accept      multipart/form-data
// @Produce     json
//
// @Param       Authorization  header    string  true   "Bearer token"
// @Param       file           formData  file    true   "The attachment"
// @Param       kind           query     string  false  "Restrict allowed types"  Enums(image)
//
// @Success     201  {object}  handlers.UploadResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Unsupported type or missing file"
// @Failure     413  {object}  handlers.ErrorResponse  "File too large"
// @Router      /uploads [post]
func (h *Handlers) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "multipart field 'file' is required")
		return
	}

	kind := uploads.KindAny
	if c.Query("kind") == "image" {
		kind = uploads.KindImage
	}

	f, err := fh.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	defer f.Close()

	name, err := h.uploads.Save(fh.Filename, f, kind)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrUnsupportedType):
			fail(c, http.StatusBadRequest, ErrCodeUnsupportedUpload, "attachment type not allowed")
		case errors.Is(err, uploads.ErrTooLarge):
			fail(c, http.StatusRequestEntityTooLarge, ErrCodeUploadTooLarge, "attachment exceeds the 5 MiB limit")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, UploadResponse{Name: name})
}

// ServeUpload godoc
// @ID          serveAttachment
// @Summary     Download an attachment
// @Description Serves a stored attachment by its opaque name.
// @Tags        Uploads
// @Produce     octet-stream
//
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       name           path    string  true  "Stored attachment name"
//
// @Success     200  {file}    file
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /uploads/{name} [get]
func (h *Handlers) ServeUpload(c *gin.Context) {
	path, err := h.uploads.Path(c.Param("name"))
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "attachment not found")
		return
	}
	c.File(path)
}
