package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wishlistController "barakahku_backend/internals/features/wishlists/controller"
)

// WishlistRoutes: semuanya butuh login.
func WishlistRoutes(user fiber.Router, db *gorm.DB) {
	wishlistCtrl := wishlistController.NewWishlistController(db)

	wishlist := user.Group("/wishlist")
	wishlist.Get("/", wishlistCtrl.GetWishlist)
	wishlist.Post("/items", wishlistCtrl.AddItem)
	wishlist.Delete("/items/:product_id", wishlistCtrl.RemoveItem)
}
