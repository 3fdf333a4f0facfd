// 📁 controller/order_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cartModel "barakahku_backend/internals/features/carts/model"
	couponModel "barakahku_backend/internals/features/coupons/model"
	"barakahku_backend/internals/features/orders/dto"
	"barakahku_backend/internals/features/orders/model"
	"barakahku_backend/internals/features/orders/service"
	shippingModel "barakahku_backend/internals/features/shippings/model"
	helper "barakahku_backend/internals/helpers"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// Nomor order ORD-YYYYMMDD-XXXXXXXX; dipakai langsung sebagai order_id
// di gateway, jadi harus unik global.
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}

// 🟢 CREATE ORDER: checkout keranjang. Validasi stok, kupon opsional,
// kurangi stok dan kosongkan keranjang dalam satu transaksi.
func (ctrl *OrderController) CreateOrder(c *fiber.Ctx) error {
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var order model.Order
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var address shippingModel.ShippingAddress
		if err := tx.First(&address,
			"shipping_address_id = ? AND shipping_address_user_id = ?",
			body.ShippingAddressID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Address not found")
			}
			return err
		}

		var items []cartModel.CartItem
		if err := tx.Preload("Product").
			Where("cart_item_user_id = ?", userID).
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Keranjang kosong")
		}

		var total int64
		orderItems := make([]model.OrderItem, 0, len(items))
		for i := range items {
			p := items[i].Product
			if p == nil || !p.ProductIsActive {
				return fiber.NewError(fiber.StatusBadRequest, "Ada produk yang sudah tidak tersedia")
			}
			if p.ProductStock < items[i].CartItemQuantity {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Stok %s tidak mencukupi", p.ProductTitle))
			}
			total += p.ProductPrice * int64(items[i].CartItemQuantity)
			orderItems = append(orderItems, model.OrderItem{
				OrderItemProductID: p.ProductID,
				OrderItemQuantity:  items[i].CartItemQuantity,
				OrderItemPrice:     p.ProductPrice,
			})
		}

		var couponCode *string
		if code := strings.ToUpper(strings.TrimSpace(body.CouponCode)); code != "" {
			var coupon couponModel.Coupon
			if err := tx.First(&coupon, "coupon_code = ?", code).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusBadRequest, "Kupon tidak valid")
				}
				return err
			}
			if !coupon.IsValidAt(time.Now()) {
				return fiber.NewError(fiber.StatusBadRequest, "Kupon tidak valid")
			}
			total -= coupon.CouponDiscountAmount
			if total < 0 {
				total = 0
			}
			couponCode = &coupon.CouponCode
		}

		order = model.Order{
			OrderUserID:        userID,
			OrderNumber:        newOrderNumber(),
			OrderTotalAmount:   total,
			OrderStatus:        model.OrderStatusPending,
			OrderPaymentStatus: model.OrderPayStatusPending,
			OrderPaymentMethod: body.PaymentMethod,
			OrderCouponCode:    couponCode,
			OrderItems:         orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Stok dikurangi saat checkout, bukan saat pembayaran
		for i := range items {
			res := tx.Table("products").
				Where("product_id = ? AND product_stock >= ?",
					items[i].CartItemProductID, items[i].CartItemQuantity).
				Update("product_stock", gorm.Expr("product_stock - ?", items[i].CartItemQuantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Stok berubah, silakan ulangi checkout")
			}
		}

		return tx.Where("cart_item_user_id = ?", userID).Delete(&cartModel.CartItem{}).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.FromFiberError(c, fe)
		}
		log.Println("[ERROR] Checkout gagal:", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat order")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Order dibuat, lanjutkan pembayaran", order)
}

// 🟢 GET MY ORDERS
func (ctrl *OrderController) GetMyOrders(c *fiber.Ctx) error {
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 10, 100)

	base := ctrl.DB.Model(&model.Order{}).Where("order_user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil order")
	}

	var orders []model.Order
	if err := base.Preload("OrderItems").
		Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil order")
	}

	return c.JSON(fiber.Map{
		"data":       orders,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// 🟢 GET ORDER DETAIL: by order_number, hanya milik sendiri.
func (ctrl *OrderController) GetOrderByNumber(c *fiber.Ctx) error {
	raw, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var order model.Order
	if err := ctrl.DB.Preload("OrderItems").
		First(&order, "order_number = ? AND order_user_id = ?", c.Params("number"), userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil order")
	}

	return c.JSON(order)
}

/* ================= Admin ================= */

// 🟢 GET ALL ORDERS: filter status pengiriman/pembayaran.
func (ctrl *OrderController) GetAllOrders(c *fiber.Ctx) error {
	db := ctrl.DB.Model(&model.Order{})

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		db = db.Where("order_status = ?", strings.ToLower(s))
	}
	if ps := strings.TrimSpace(c.Query("payment_status")); ps != "" {
		db = db.Where("order_payment_status = ?", strings.ToLower(ps))
	}

	paging := helper.ResolvePaging(c, 20, 200)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil order")
	}

	var orders []model.Order
	if err := db.Preload("OrderItems").
		Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil order")
	}

	return c.JSON(fiber.Map{
		"data":       orders,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// 🟢 UPDATE ORDER STATUS: status pengiriman (packed/shipped/delivered/cancelled).
// Status PEMBAYARAN tidak bisa diubah dari sini; itu wewenang payments.
func (ctrl *OrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status" validate:"required,oneof=pending packed shipped delivered cancelled"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var order model.Order
	if err := ctrl.DB.First(&order, "order_number = ?", c.Params("number")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Order not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil order")
	}

	// Order yang belum dibayar tidak boleh masuk alur pengiriman.
	if !service.CanFulfill(&order, body.Status) {
		return helper.Error(c, fiber.StatusBadRequest, "Order belum dibayar")
	}

	order.OrderStatus = body.Status
	if err := ctrl.DB.Save(&order).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan order")
	}

	return helper.Success(c, "Status order diperbarui", order)
}
