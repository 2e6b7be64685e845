package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Role based access: a role is granted (resource, action) pairs, "*" matches any.
const modelConf = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// DefaultPolicies is the built-in role table for site staff.
var DefaultPolicies = [][]string{
	{"owner", "*", "*"},

	{"manager", "attendance", "*"},
	{"manager", "labour_rate", "*"},
	{"manager", "wage", "*"},
	{"manager", "ledger", "read"},
	{"manager", "ledger", "export"},
	{"manager", "ledger", "adjust"},
	{"manager", "ledger", "material"},
	{"manager", "cost", "read"},

	{"engineer", "attendance", "create"},
	{"engineer", "attendance", "read"},
	{"engineer", "ledger", "read"},

	{"accountant", "wage", "read"},
	{"accountant", "ledger", "read"},
	{"accountant", "ledger", "export"},
	{"accountant", "cost", "read"},
}

// NewEnforcer builds an in-memory enforcer loaded with policies.
func NewEnforcer(policies [][]string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelConf)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if len(policies) > 0 {
		if _, err := e.AddPolicies(policies); err != nil {
			return nil, err
		}
	}
	return e, nil
}
