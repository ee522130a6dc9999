package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成全局唯一ID，资源/评论/导图等实体共用
func GenID() int64 {
	return node.Generate().Int64()
}

func GenUserID() int64 {
	return node.Generate().Int64()
}
