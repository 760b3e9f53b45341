package services

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrRegisterAlreadyOpen = errors.New("cash register already open")
	ErrNoOpenRegister      = errors.New("no open cash register")
	ErrPaymentShort        = errors.New("payments do not cover the sale total")
	ErrChangeExceedsCash   = errors.New("change due exceeds cash tendered")
	ErrDuplicateBarcode    = errors.New("barcode already in use by another record")
	ErrNotCancellable      = errors.New("only completed sales can be cancelled")
	ErrFiscalNotPending    = errors.New("fiscal document is not pending")
	ErrTicketNotFound      = errors.New("ticket not found")
)
