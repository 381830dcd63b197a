package fixture

import (
	"github.com/google/uuid"

	"github.com/eurofurence/reg-grailpay-cli/internal/config"
	"github.com/eurofurence/reg-grailpay-cli/internal/entities"
)

const (
	firstTransactionCompletedAt = "2024-05-02 16:14:25"
	productType                 = "financial"
	phone                       = "1234567890"
)

func NewAccountRouting(routingNumber string) entities.AccountRouting {
	return entities.AccountRouting{
		RoutingNumber: routingNumber,
		AccountNumber: RandomAccountNumber(),
	}
}

// BusinessBuilder assembles a synthetic business for onboarding tests. Everything but email,
// tin and bank account is fixed.
type BusinessBuilder struct {
	conf           *config.Application
	email          string
	tin            string
	accountRouting entities.AccountRouting
}

func NewBusinessBuilder(conf *config.Application) *BusinessBuilder {
	return &BusinessBuilder{
		conf: conf,
	}
}

func (b *BusinessBuilder) RandomEmail() *BusinessBuilder {
	b.email = RandomEmail()
	return b
}

func (b *BusinessBuilder) RandomTin() *BusinessBuilder {
	b.tin = RandomTin()
	return b
}

func (b *BusinessBuilder) RandomAccountRouting() *BusinessBuilder {
	b.accountRouting = NewAccountRouting(b.conf.RoutingNumber)
	return b
}

// Random fills every randomized field.
func (b *BusinessBuilder) Random() *BusinessBuilder {
	return b.RandomEmail().RandomTin().RandomAccountRouting()
}

func (b *BusinessBuilder) Build() entities.Business {
	return entities.Business{
		ClientReferenceId: uuid.NewString(),
		Kyb:               b.conf.Onboarding.Kyb,
		FirstName:         "John",
		LastName:          "Doe",
		Email:             b.email,
		Phone:             phone,
		Business: entities.BusinessProfile{
			Name:               "John Incorporation",
			Tin:                b.tin,
			TradingName:        "John Incorporation",
			EntityType:         "Sole Trader",
			IncorporationDate:  "2024-02-02",
			IncorporationState: "CO",
			Industry:           "Nature of business",
			IndustryClassification: entities.IndustryClassification{
				CodeType:    "SIC",
				Codes:       []string{"NAICS 42", "NAICS 45"},
				Description: "abcdefg",
			},
			SourceOfWealth:              "2344",
			SourceOfFunds:               "Business revenue",
			FirstTransactionCompletedAt: firstTransactionCompletedAt,
			ProductType:                 productType,
			RegisteredAsInactive:        false,
			AddressType:                 "Registered",
			Address: entities.Address{
				Line1: "10554 W Quarles Ave",
				City:  "Littleton",
				State: "CO",
				Zip:   "8012",
			},
		},
		BusinessOwners: []entities.BusinessOwner{
			{
				FirstName: "John",
				LastName:  "Doe",
				Dob:       "2023-04-11",
				Ssn9:      "123456789",
				Address: entities.Address{
					Line1: "10554 W Quarles Ave",
					City:  "Littleton",
					State: "CO",
					Zip:   "80127",
				},
				IsBeneficialOwner:           true,
				OwnershipPercentage:         25,
				Email:                       b.email,
				Phone:                       phone,
				Occupation:                  "Co-founder",
				FirstTransactionCompletedAt: firstTransactionCompletedAt,
				ProductType:                 productType,
			},
		},
		BankAccount: entities.BankAccount{
			Custom: entities.CustomBankAccount{
				AccountNumber: b.accountRouting.AccountNumber,
				RoutingNumber: b.accountRouting.RoutingNumber,
				AccountName:   "Jack Jones",
				AccountType:   "checking",
			},
		},
	}
}
