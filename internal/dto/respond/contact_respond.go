package respond

// ContactRespond 联系人列表项
type ContactRespond struct {
	Alias       string `json:"alias"`
	DisplayName string `json:"displayName"`
}

// AddContactRespond 添加联系人结果
type AddContactRespond struct {
	Success bool `json:"success"`
}
