// internal/i18n/keys.go
package i18n

// Translation keys used across handlers and responses.
const (
	// Auth
	KeyAuthRequired        = "auth.required"
	KeyAuthRegisterSuccess = "auth.register_success"
	KeyAuthLoginSuccess    = "auth.login_success"
	KeyAuthLogoutSuccess   = "auth.logout_success"
	KeyAuthDuplicateEmail  = "auth.duplicate_email"
	KeyAuthInvalidLogin    = "auth.invalid_credentials"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"

	// Products
	KeyProductNotFound  = "product.not_found"
	KeyCategoryNotFound = "category.not_found"

	// Cart
	KeyCartInvalidProduct = "cart.invalid_product"
	KeyCartOutOfStock     = "cart.out_of_stock"
	KeyCartEmpty          = "cart.empty"

	// Orders
	KeyOrderNotFound = "order.not_found"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"
)
