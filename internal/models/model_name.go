package models

// ModelName enumerates the machine learning models the model endpoint knows
// about. The underlying string values are the permitted wire values; anything
// else is rejected during validation, never at handler time.
type ModelName string

const (
	// ModelAlexNet is the AlexNet convolutional network.
	ModelAlexNet ModelName = "alexnet"

	// ModelResNet is the ResNet residual network.
	ModelResNet ModelName = "resnet"

	// ModelLeNet is the LeNet convolutional network.
	ModelLeNet ModelName = "lenet"
)

// ModelNames returns the permitted enumeration members in declaration order.
func ModelNames() []string {
	return []string{string(ModelAlexNet), string(ModelResNet), string(ModelLeNet)}
}

// Message returns the descriptive message associated with the model.
func (m ModelName) Message() string {
	switch m {
	case ModelAlexNet:
		return "Deep Learning FTW!"
	case ModelLeNet:
		return "LeCNN all the images"
	default:
		return "Have some residuals"
	}
}
