package test

import (
	"github.com/carelink/vitals/test"
	"github.com/carelink/vitals/users"
)

func RandomUser() users.User {
	name := test.Faker.Person().Name()
	return users.User{
		UserId: test.Faker.Internet().User() + test.Faker.UUID().V4()[:8],
		Name:   &name,
		Role:   users.RolePatient,
	}
}
