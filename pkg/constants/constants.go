package constants

// 请求参数
const (
	OwnerAliasParam  = "ownerAlias" // 新接口使用的查询参数
	LegacyAliasParam = "mialias"    // /mensajeria 兼容接口使用的查询参数
	CtxAliasParam    = "aliasParam" // gin.Context 中保存当前路由查询参数名的 key
	CtxRequestID     = "requestId"
	HeaderRequestID  = "X-Request-ID"
)

// 响应文本
const (
	MsgMissingParamFmt     = "Error: Se requiere el parámetro %s"
	MsgMissingContact      = "Se requieren los campos 'contacto' y 'nombre'"
	MsgMissingFields       = "Error: Faltan campos requeridos"
	MsgErrorPrefix         = "Error: "
	MsgInternalErrorDetail = "error interno del servidor"
	MsgInternalError       = MsgErrorPrefix + MsgInternalErrorDetail
	MsgNotInContactList    = "recipient is not in sender's contact list"
	MsgMessageSent         = "message sent successfully"
	ReceivedLineFmt        = "%s te escribió \"%s\" el %s."
)

// ReceivedDateLayout 收到消息的日期格式 dd/mm/yy
const ReceivedDateLayout = "02/01/06"

const (
	CHANNEL_SIZE = 100 // channel 模式下事件缓冲区大小
)
