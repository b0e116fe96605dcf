package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg string
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region InsufficientStockError

type InsufficientStockError struct {
	Msg string
}

func (e *InsufficientStockError) Error() string {
	return e.Msg
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

//endregion

//region PurchaseLimitError

type PurchaseLimitError struct {
	Msg string
}

func (e *PurchaseLimitError) Error() string {
	return e.Msg
}

func (e *PurchaseLimitError) Is(target error) bool {
	_, ok := target.(*PurchaseLimitError)
	return ok
}

//endregion

//region EmailTakenError

type EmailTakenError struct {
	Msg string
}

func (e *EmailTakenError) Error() string {
	return e.Msg
}

func (e *EmailTakenError) Is(target error) bool {
	_, ok := target.(*EmailTakenError)
	return ok
}

//endregion
