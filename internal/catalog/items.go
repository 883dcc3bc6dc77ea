package catalog

// menuItems is the full menu of Pavan's Bawarchi.
var menuItems = []Item{
	// Hyderabadi Biryanis
	{ID: 1, Name: "Hyderabadi Chicken Biryani", Description: "Authentic Hyderabadi dum biryani with tender chicken and aromatic basmati rice", Price: 18.99, Category: "Biryani", Image: "https://th.bing.com/th/id/OIP.LMrVUyc4CLKdSwVXPrW3ywHaE8?w=274&h=183&c=7&r=0&o=7&pid=1.7&rm=3"},
	{ID: 2, Name: "Mutton Biryani", Description: "Premium mutton pieces cooked with fragrant spices and saffron rice", Price: 22.99, Category: "Biryani", Image: "https://kitchenofdebjani.com/wp-content/uploads/2018/10/Royal-Indian-Hotel-Mutton-Biryani.jpg"},
	{ID: 3, Name: "Hyderabadi Vegetable Biryani", Description: "Mixed vegetables layered with aromatic basmati rice and dum cooked", Price: 15.99, Category: "Biryani", Image: "https://th.bing.com/th/id/OIP.mqsjhI7s7syKm5lN5IPGdAHaEK?w=272&h=180&c=7&r=0&o=7&pid=1.7&rm=3"},
	{ID: 4, Name: "Fish Biryani", Description: "Fresh fish marinated in spices and cooked with fragrant rice", Price: 19.99, Category: "Biryani", Image: "https://as2.ftcdn.net/v2/jpg/04/18/22/51/1000_F_418225117_RHkXwPGZ20Ajrzzad59nGIidLY9vhj6y.jpg"},
	{ID: 5, Name: "Prawn Biryani", Description: "Succulent prawns with aromatic spices and basmati rice", Price: 21.99, Category: "Biryani", Image: "https://i.ytimg.com/vi/yUntK4Vdqfw/maxresdefault.jpg"},

	// Hyderabadi Non-Veg Specials
	{ID: 6, Name: "Mutton Marag", Description: "Traditional Hyderabadi mutton curry with rich, flavorful gravy", Price: 20.99, Category: "Non-Veg", Image: "https://wirally.com/wp-content/uploads/2023/03/Best-Mutton-Marag-In-Hyderabad1-696x392.jpg"},
	{ID: 7, Name: "Chicken Haleem", Description: "Slow-cooked lentils with tender chicken, a Hyderabadi favorite", Price: 16.99, Category: "Non-Veg", Image: "https://www.thedeliciouscrescent.com/wp-content/uploads/2020/08/Haleem-4.jpg"},
	{ID: 8, Name: "Hyderabadi Chicken Korma", Description: "Creamy chicken curry with cashews and aromatic spices", Price: 17.99, Category: "Non-Veg", Image: "https://th.bing.com/th/id/OIP.EsGHsvXoydIiinWXHvkJ5AHaE8?w=301&h=200&c=7&r=0&o=7&pid=1.7&rm=3"},
	{ID: 9, Name: "Keema Kaleji", Description: "Spiced minced mutton with liver, cooked Hyderabadi style", Price: 18.99, Category: "Non-Veg", Image: "https://i.pinimg.com/736x/48/3a/ea/483aeafedff00d056ecbb32b29c55d33.jpg"},
	{ID: 10, Name: "Chicken Tikka Masala", Description: "Tandoor grilled chicken in rich tomato-based curry", Price: 16.99, Category: "Non-Veg", Image: "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?w=400&h=300&fit=crop&crop=center"},

	// Kebabs & Tandoor
	{ID: 11, Name: "Seekh Kebab", Description: "Spiced minced mutton grilled on skewers", Price: 14.99, Category: "Kebabs", Image: "https://tse4.mm.bing.net/th/id/OIP.WrAOvoxSRA7nG2Gzu42pXwAAAA?rs=1&pid=ImgDetMain&o=7&rm=3"},
	{ID: 12, Name: "Chicken Tikka", Description: "Marinated chicken chunks grilled in tandoor", Price: 15.99, Category: "Kebabs", Image: "https://images.saymedia-content.com/.image/t_share/MTg0Mzg1ODQ2OTk5OTE4MDU4/7-coloured-chicken-tikka-kebabs.jpg"},
	{ID: 13, Name: "Shammi Kebab", Description: "Soft, melt-in-mouth mutton patties with spices", Price: 13.99, Category: "Kebabs", Image: "https://images.unsplash.com/photo-1628294895950-9805252327bc?w=400&h=300&fit=crop&crop=center"},
	{ID: 14, Name: "Boti Kebab", Description: "Tender mutton pieces marinated and grilled to perfection", Price: 17.99, Category: "Kebabs", Image: "https://images.unsplash.com/photo-1529692236671-f1f6cf9683ba?w=400&h=300&fit=crop&crop=center"},
	{ID: 15, Name: "Fish Tikka", Description: "Fresh fish marinated in tandoori spices and grilled", Price: 16.99, Category: "Kebabs", Image: "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=400&h=300&fit=crop&crop=center"},

	// Vegetarian Delights
	{ID: 16, Name: "Paneer Butter Masala", Description: "Soft cottage cheese in rich tomato gravy", Price: 13.99, Category: "Vegetarian", Image: "https://www.cookwithmanali.com/wp-content/uploads/2019/05/Paneer-Butter-Masala-Recipe-400x606.jpg"},
	{ID: 17, Name: "Dal Hyderabadi", Description: "Traditional lentil curry with aromatic tempering", Price: 9.99, Category: "Vegetarian", Image: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&h=300&fit=crop&crop=center"},
	{ID: 18, Name: "Bagara Baingan", Description: "Hyderabadi style stuffed eggplant curry", Price: 12.99, Category: "Vegetarian", Image: "https://th.bing.com/th/id/OIP.rGAncWkTNOGuGaal7jGP9wHaEK?w=326&h=183&c=7&r=0&o=7&pid=1.7&rm=3"},
	{ID: 19, Name: "Aloo Gosht Style Aloo", Description: "Spiced potatoes cooked in rich gravy", Price: 10.99, Category: "Vegetarian", Image: "https://i.ytimg.com/vi/aJEgjpja9c4/maxresdefault.jpg"},
	{ID: 20, Name: "Mixed Vegetable Curry", Description: "Seasonal vegetables in aromatic Hyderabadi spices", Price: 11.99, Category: "Vegetarian", Image: "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400&h=300&fit=crop&crop=center"},

	// Rice & Breads
	{ID: 21, Name: "Hyderabadi Pulao", Description: "Fragrant rice cooked with whole spices and ghee", Price: 8.99, Category: "Rice", Image: "https://images.unsplash.com/photo-1589302168068-964664d93dc0?w=400&h=300&fit=crop&crop=center"},
	{ID: 22, Name: "Roomali Roti", Description: "Paper-thin handkerchief bread, soft and delicate", Price: 3.99, Category: "Breads", Image: "https://www.cookwithkushi.com/wp-content/uploads/2016/10/rumali_roti_roomali_roti_recipe.jpg"},
	{ID: 23, Name: "Hyderabadi Naan", Description: "Soft leavened bread baked in tandoor", Price: 4.99, Category: "Breads", Image: "https://www.awesomecuisine.com/wp-content/uploads/2017/08/hyderabadi_naan.jpg"},
	{ID: 24, Name: "Kulcha", Description: "Stuffed bread with spiced filling", Price: 5.99, Category: "Breads", Image: "https://www.ruchiskitchen.com/wp-content/uploads/2014/11/Wheat-Kulcha-recipe-1.jpg.webp"},

	// Desserts
	{ID: 25, Name: "Double Ka Meetha", Description: "Hyderabadi bread pudding with nuts and saffron", Price: 7.99, Category: "Desserts", Image: "https://www.nuaodisha.com/Receipe/Double-ka-Meetha-1-Double-ka-meetha.jpg"},
	{ID: 26, Name: "Khubani Ka Meetha", Description: "Apricot dessert with cream, a Hyderabadi specialty", Price: 8.99, Category: "Desserts", Image: "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400&h=300&fit=crop&crop=center"},
	{ID: 27, Name: "Sheer Khurma", Description: "Vermicelli pudding with dates and nuts", Price: 6.99, Category: "Desserts", Image: "https://mytastycurry.com/wp-content/uploads/2018/05/Sheer-Khurma1-.jpg"},
	{ID: 28, Name: "Qubani Ka Meetha with Ice Cream", Description: "Traditional apricot dessert served with vanilla ice cream", Price: 9.99, Category: "Desserts", Image: "https://www.yummyfoodrecipes.com/resources/picture/org/Khubani-ka-meetha.jpg"},
	{ID: 29, Name: "Kulfi Falooda", Description: "Traditional Indian ice cream with vermicelli and rose syrup", Price: 7.99, Category: "Desserts", Image: "https://tse2.mm.bing.net/th/id/OIP.0G7Cot9fAGA8BseLVTskRgAAAA?rs=1&pid=ImgDetMain&o=7&rm=3"},
	{ID: 30, Name: "Gulab Jamun", Description: "Soft milk dumplings in cardamom flavored syrup", Price: 5.99, Category: "Desserts", Image: "https://th.bing.com/th/id/OIP.TR6gVZG-S4YxWTyGXxAHiwHaFk?w=256&h=192&c=7&r=0&o=7&pid=1.7&rm=3"},

	// Beverages
	{ID: 31, Name: "Hyderabadi Chai", Description: "Traditional spiced tea with cardamom and ginger", Price: 2.99, Category: "Beverages", Image: "https://images.unsplash.com/photo-1571934811356-5cc061b6821f?w=400&h=300&fit=crop&crop=center"},
	{ID: 32, Name: "Lassi", Description: "Refreshing yogurt drink, sweet or salted", Price: 4.99, Category: "Beverages", Image: "https://www.indianhealthyrecipes.com/wp-content/uploads/2022/03/lassi-recipe.jpg"},
	{ID: 33, Name: "Fresh Lime Water", Description: "Refreshing lime juice with mint and spices", Price: 3.99, Category: "Beverages", Image: "https://cdn.grofers.com/assets/search/usecase/banner/fresh_lime_water_01.png"},
}
