package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Message string `json:"message"`         // รายละเอียดของ Error
	Error   string `json:"error,omitempty"` // ข้อความจาก error ต้นทาง (ถ้ามี)
}
