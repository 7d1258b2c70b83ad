package zoo

import (
	"github.com/openzoo/zoo-registry/pkg/serializer"
)

// AnimalRule is the default rule for Animal entities. Each nested
// to-one entity has its own animals list stripped, so no traversal can
// come back around to an Animal.
func AnimalRule() serializer.Rule {
	return serializer.NewRule(
		serializer.Int("id"),
		serializer.Text("name"),
		serializer.Text("species"),
		serializer.Ref("zookeeper", ZookeeperTypeName, "animals"),
		serializer.Ref("enclosure", EnclosureTypeName, "animals"),
	)
}

// ZookeeperRule is the default rule for Zookeeper entities. The nested
// animals have their zookeeper back reference stripped; their enclosure
// is still expanded, minus its animals list, via the Animal default
// rule.
func ZookeeperRule() serializer.Rule {
	return serializer.NewRule(
		serializer.Int("id"),
		serializer.Text("name"),
		serializer.Date("birthday"),
		serializer.Ref("animals", AnimalTypeName, "zookeeper"),
	)
}

// EnclosureRule is the default rule for Enclosure entities. The nested
// animals have their enclosure back reference stripped; their zookeeper
// is still expanded, minus its animals list.
func EnclosureRule() serializer.Rule {
	return serializer.NewRule(
		serializer.Int("id"),
		serializer.Text("environment"),
		serializer.Bool("open_to_visitors"),
		serializer.Ref("animals", AnimalTypeName, "enclosure"),
	)
}

// NewRegistry returns a registry holding the default rules for all
// three zoo entity types.
func NewRegistry() *serializer.Registry {
	registry := serializer.NewRegistry()

	registry.Register(AnimalTypeName, AnimalRule())
	registry.Register(ZookeeperTypeName, ZookeeperRule())
	registry.Register(EnclosureTypeName, EnclosureRule())

	return registry
}
