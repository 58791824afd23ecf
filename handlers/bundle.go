package handlers

import (
	userRepoPkg "bookly/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	GetUserByIDHandler         gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc

	// Business endpoints
	ListBusinessesHandler  gin.HandlerFunc
	GetBusinessByIDHandler gin.HandlerFunc
	CreateBusinessHandler  gin.HandlerFunc
	UpdateBusinessHandler  gin.HandlerFunc

	// Booking endpoints
	ListAvailableSlotsHandler   gin.HandlerFunc
	ReserveHandler              gin.HandlerFunc
	CancelBookingHandler        gin.HandlerFunc
	ListMyBookingsHandler       gin.HandlerFunc
	ListBusinessBookingsHandler gin.HandlerFunc
}
