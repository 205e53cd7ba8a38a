package handler

import (
	"slices"
	"strconv"

	"molle-settlement/internal/model"
	apperrors "molle-settlement/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

// 身分由上游 auth gateway 驗證後以 header 傳入。
// 這裡不驗證 header 來源：/api/v1 的受保護路由只能經由 gateway 對外開放，
// gateway 必須覆寫客戶端帶來的 X-User-ID / X-User-Role。
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	ctxUserID = "user_id"
	ctxRole   = "user_role"
)

type Capability string

const (
	CapReleasePayments Capability = "payments:release"
	CapViewCredits     Capability = "credits:view"
	CapViewTickets     Capability = "tickets:view"
	CapVerifyTickets   Capability = "tickets:verify"
	CapManageFees      Capability = "fees:manage"
)

var rolePolicy = map[model.Role][]Capability{
	model.RoleAdmin: {CapReleasePayments, CapViewCredits, CapViewTickets, CapVerifyTickets, CapManageFees},
	model.RoleHost:  {CapVerifyTickets},
}

func Can(role model.Role, capability Capability) bool {
	return slices.Contains(rolePolicy[role], capability)
}

// RequireCapability 缺少身分回 401，角色沒有權限回 403。
// 只信任 gateway 寫入的身分 header，服務本身不可直接暴露在公網。
func RequireCapability(capability Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.GetHeader(HeaderUserID))
		if err != nil || userID <= 0 {
			handleError(c, apperrors.ErrUnauthorized, "RequireCapability")
			return
		}
		role := model.Role(c.GetHeader(HeaderUserRole))
		if !role.IsValid() {
			handleError(c, apperrors.ErrUnauthorized, "RequireCapability")
			return
		}
		if !Can(role, capability) {
			handleError(c, apperrors.ErrForbidden, "RequireCapability")
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxRole, role)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int {
	return c.GetInt(ctxUserID)
}
