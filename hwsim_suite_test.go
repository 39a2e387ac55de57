package hwsim_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestHwsim(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hwsim Suite")
}
