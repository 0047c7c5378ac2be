package admins

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/database"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/models"
	"github.com/MiceHelium-Design-Studio/thedrawin-sub000/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadMedia accepts a multipart file, stores it in the bucket and records
// it in the media table. Used for draw banners and promo images.
func UploadMedia(w http.ResponseWriter, r *http.Request) {
	adminID, _ := utils.GetUserID(r)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "file field is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedMediaTypes[contentType] {
		utils.WriteJSON(w, http.StatusUnsupportedMediaType, utils.APIResponse{Success: false, Message: "Only jpeg, png, webp and gif images are allowed"})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	objectKey := fmt.Sprintf("media/%d_%d%s", time.Now().UnixNano(), adminID, ext)

	if err := utils.UploadToS3(objectKey, file, header.Size); err != nil {
		log.Printf("[admin-media] upload %s: %v", objectKey, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Upload failed"})
		return
	}

	url, err := utils.PublicObjectURL(objectKey)
	if err != nil {
		// bucket has no public base URL configured; fall back to a signed URL
		url, err = utils.GenerateSignedURL(objectKey, 7*24*3600)
		if err != nil {
			log.Printf("[admin-media] url for %s: %v", objectKey, err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Upload failed"})
			return
		}
	}

	media := models.Media{
		FileName:    header.Filename,
		ObjectKey:   objectKey,
		URL:         url,
		ContentType: contentType,
		Size:        header.Size,
		UploadedBy:  int64(adminID),
	}
	if err := database.DB.Create(&media).Error; err != nil {
		log.Printf("[admin-media] record %s: %v", objectKey, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Upload failed"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "File uploaded",
		Data:    map[string]interface{}{"media": media},
	})
}

func ListMedia(w http.ResponseWriter, r *http.Request) {
	var rows []models.Media
	if err := database.DB.Order("created_at DESC").Limit(200).Find(&rows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{"media": rows}})
}

// DeleteMedia removes the object from the bucket and its DB record.
func DeleteMedia(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid media id"})
		return
	}

	db := database.DB
	var media models.Media
	if err := db.First(&media, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Media not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	if err := utils.DeleteFromS3(media.ObjectKey); err != nil {
		// keep the DB row so the orphaned object can be retried
		log.Printf("[admin-media] delete object %s: %v", media.ObjectKey, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to delete object from storage"})
		return
	}
	if err := db.Delete(&media).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Delete failed"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Media deleted"})
}
