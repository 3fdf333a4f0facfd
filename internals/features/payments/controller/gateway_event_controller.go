// 📁 controller/gateway_event_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barakahku_backend/internals/features/payments/model"
	helper "barakahku_backend/internals/helpers"
)

/* =======================================================================
   Audit trail webhook gateway (admin)
======================================================================= */

type GatewayEventController struct {
	DB *gorm.DB
}

func NewGatewayEventController(db *gorm.DB) *GatewayEventController {
	return &GatewayEventController{DB: db}
}

/* =======================================================================
   List (filter + pagination)
   Query params:
     - target: donation|order
     - outcome: applied|duplicate|ignored|rejected
     - q: cari di order ref (ilike)
     - start, end: ISO8601 (filter received_at)
     - page, per_page
======================================================================= */

func (h *GatewayEventController) ListEvents(c *fiber.Ctx) error {
	db := h.DB.Model(&model.PaymentGatewayEvent{})

	if t := strings.TrimSpace(c.Query("target")); t != "" {
		db = db.Where("gateway_event_target = ?", strings.ToLower(t))
	}
	if o := strings.TrimSpace(c.Query("outcome")); o != "" {
		db = db.Where("gateway_event_outcome = ?", strings.ToLower(o))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		db = db.Where("gateway_event_order_ref ILIKE ?", "%"+q+"%")
	}
	if start := strings.TrimSpace(c.Query("start")); start != "" {
		if t, err := time.Parse(time.RFC3339, start); err == nil {
			db = db.Where("gateway_event_received_at >= ?", t)
		} else {
			return helper.Error(c, fiber.StatusBadRequest, "invalid start (use RFC3339)")
		}
	}
	if end := strings.TrimSpace(c.Query("end")); end != "" {
		if t, err := time.Parse(time.RFC3339, end); err == nil {
			db = db.Where("gateway_event_received_at < ?", t)
		} else {
			return helper.Error(c, fiber.StatusBadRequest, "invalid end (use RFC3339)")
		}
	}

	paging := helper.ResolvePaging(c, 20, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentGatewayEvent
	if err := db.Order("gateway_event_received_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"data":       rows,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

func (h *GatewayEventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.PaymentGatewayEvent
	if err := h.DB.First(&m, "gateway_event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "event not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(m)
}
