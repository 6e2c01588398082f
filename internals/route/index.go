package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "hostelku_backend/internals/features/attendance/events/route"
	regularizationRoute "hostelku_backend/internals/features/attendance/regularizations/route"
	feeRoute "hostelku_backend/internals/features/finance/fees/route"
	relayRoute "hostelku_backend/internals/features/finance/payments/route"
	admissionRoute "hostelku_backend/internals/features/hostel/admissions/route"
	complaintRoute "hostelku_backend/internals/features/hostel/complaints/route"
	hostelRoute "hostelku_backend/internals/features/hostel/hostels/route"
	notificationRoute "hostelku_backend/internals/features/hostel/notifications/route"
	authRoute "hostelku_backend/internals/features/users/auth/route"
	userRoute "hostelku_backend/internals/features/users/user/route"
	userModel "hostelku_backend/internals/features/users/user/model"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH / RELAY (tanpa JWT) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PaymentRelayRoutes...")
	relayRoute.PaymentRelayRoutes(app, db)

	log.Println("[INFO] Setting up FeeWebhookRoutes...")
	feeRoute.FeeWebhookRoutes(app, db)

	// ===================== GROUPS =====================

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			"❌ Akses khusus pengelola hostel",
			userModel.RoleWarden, userModel.RoleStaff, userModel.RoleAdmin,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Hostel routes...")
	hostelRoute.HostelPublicRoutes(public, db)
	hostelRoute.HostelAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User routes...")
	authRoute.AuthUserRoutes(private, db)
	userRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceUserRoutes(private, db)
	regularizationRoute.RegularizationUserRoutes(private, db)
	regularizationRoute.RegularizationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Admission routes...")
	admissionRoute.AdmissionUserRoutes(private, db)
	admissionRoute.AdmissionAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Complaint routes...")
	complaintRoute.ComplaintUserRoutes(private, db)
	complaintRoute.ComplaintAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Notification routes...")
	notificationRoute.NotificationUserRoutes(private, db)
	notificationRoute.NotificationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Fee routes...")
	feeRoute.FeeUserRoutes(private, db)
	feeRoute.FeeAdminRoutes(admin, db)

	log.Println("✅ Semua route selesai dipasang")
}
