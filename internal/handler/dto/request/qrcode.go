package request

type MintBatchRequest struct {
	Prefix string `json:"prefix" binding:"required,qrprefix"`
	Size   int    `json:"size" binding:"required,gt=0,lte=99999"`
}

type InvalidateQRCodeRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}
