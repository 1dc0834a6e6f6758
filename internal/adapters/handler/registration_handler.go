package handler

import (
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

const maxUploadBytes = 8 << 20

type RegistrationHandler struct {
	registrationService ports.RegistrationService
	uploadDir           string
}

func NewRegistrationHandler(registration ports.RegistrationService, uploadDir string) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registration, uploadDir: uploadDir}
}

// RegisterStudent handles manual student entry by a college or admin.
func (h *RegistrationHandler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	var req ports.RegisterStudentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	pass, err := h.registrationService.RegisterStudent(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pass)
}

// ApplyPassenger handles the passenger self-service form: multipart with
// contact fields plus an ID document and a photo. Only the stored
// filenames reach the core.
func (h *RegistrationHandler) ApplyPassenger(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	age, _ := strconv.Atoi(r.FormValue("age"))
	in := ports.ApplyPassengerInput{
		HolderName: r.FormValue("holder_name"),
		Email:      r.FormValue("email"),
		Phone:      r.FormValue("phone"),
		Age:        age,
		PassType:   domain.PassType(r.FormValue("pass_type")),
	}

	if _, header, err := r.FormFile("document"); err == nil {
		name, err := h.saveUpload(header)
		if err != nil {
			log.Printf("registration: document upload failed: %v", err)
			http.Error(w, "document upload failed", http.StatusInternalServerError)
			return
		}
		in.DocumentFile = name
	}
	if _, header, err := r.FormFile("photo"); err == nil {
		name, err := h.saveUpload(header)
		if err != nil {
			log.Printf("registration: photo upload failed: %v", err)
			http.Error(w, "photo upload failed", http.StatusInternalServerError)
			return
		}
		in.PhotoFile = name
	}

	pass, err := h.registrationService.ApplyPassenger(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pass)
}

// saveUpload stores an uploaded blob under a generated name and returns
// the filename.
func (h *RegistrationHandler) saveUpload(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}
