package inventorycontroller

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/goldDdev/api-dhj-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type inventoryRequest struct {
	Name string `json:"name" binding:"required"`
	Unit string `json:"unit"`
	Type string `json:"type"`
}

func CreateHandler(c *gin.Context) {
	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inventory := models.Inventory{Name: req.Name, Unit: req.Unit, Type: req.Type}
	if err := models.DB.Create(&inventory).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inventory": inventory})
}

func ListHandler(c *gin.Context) {
	var inventories []models.Inventory
	if err := models.DB.Where("is_deleted = 0").Order("name asc").Find(&inventories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inventories": inventories})
}

type requisitionRequest struct {
	ProjectId   int64   `json:"project_id" binding:"required"`
	InventoryId int64   `json:"inventory_id" binding:"required"`
	Qty         float64 `json:"qty" binding:"required"`
	Note        string  `json:"note"`
}

// POST /v1/mobile/inventory-request — nomor permintaan memakai ULID
// supaya urut waktu dan unik tanpa koordinasi.
func CreateRequisitionHandler(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	currentUser := userData.(models.Employee)

	var req requisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	number := ulid.MustNew(ulid.Timestamp(now), entropy).String()

	requisition := models.InventoryRequest{
		Number:      number,
		ProjectId:   req.ProjectId,
		InventoryId: req.InventoryId,
		Qty:         req.Qty,
		Note:        req.Note,
		Status:      "PENDING",
		RequestedBy: currentUser.Id,
	}
	if err := models.DB.Create(&requisition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"requisition": requisition})
}

// GET /v1/web/inventory-request
func ListRequisitionHandler(c *gin.Context) {
	query := models.DB.Preload("Inventory").Preload("Project").Order("id desc")

	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requisitions []models.InventoryRequest
	if err := query.Limit(100).Find(&requisitions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requisitions": requisitions})
}

type requisitionStatusRequest struct {
	Id     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// PUT /v1/web/inventory-request/status
func UpdateRequisitionStatusHandler(c *gin.Context) {
	userData, _ := c.Get("currentUser")
	currentUser := userData.(models.Employee)

	var req requisitionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != "CONFIRM" && req.Status != "REJECT" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status Tidak Dikenal"})
		return
	}

	var requisition models.InventoryRequest
	if err := models.DB.First(&requisition, req.Id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Permintaan Tidak Ditemukan"})
		return
	}
	if requisition.Status != "PENDING" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permintaan Sudah Diproses"})
		return
	}

	requisition.Status = req.Status
	requisition.ActionedBy = &currentUser.Id
	if err := models.DB.Save(&requisition).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requisition": requisition})
}
