package zoo

const (
	//AnimalTypeName is a type name constant for Animal
	AnimalTypeName string = "Animal"
	//ZookeeperTypeName is a type name constant for Zookeeper
	ZookeeperTypeName string = "Zookeeper"
	//EnclosureTypeName is a type name constant for Enclosure
	EnclosureTypeName string = "Enclosure"
)
