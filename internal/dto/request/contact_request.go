package request

// AddContactRequest 添加联系人请求体
// POST /contacts/:ownerAlias
type AddContactRequest struct {
	Contacto string `json:"contacto" binding:"required"` // 联系人别名
	Nombre   string `json:"nombre" binding:"required"`   // 联系人显示名称
}
