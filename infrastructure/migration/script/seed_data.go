package main

var seedCategories = []category{
	{ID: 1, Name: "Eletrônicos"},
	{ID: 2, Name: "Eletrodomésticos"},
	{ID: 3, Name: "Informática"},
	{ID: 4, Name: "Áudio"},
	{ID: 5, Name: "Acessórios"},
}

var seedProducts = []product{
	{ID: 1, Name: "Smartphone Galaxy A54", Description: "Tela 6.4, 128GB", Price: 1899.90, Brand: "Samsung", CategoryID: 1},
	{ID: 2, Name: "Smart TV 50 Crystal", Description: "4K UHD com Alexa integrada", Price: 2349.00, Brand: "Samsung", CategoryID: 1},
	{ID: 3, Name: "iPhone 13", Description: "128GB, câmera dupla", Price: 3999.00, Brand: "Apple", CategoryID: 1},
	{ID: 4, Name: "Geladeira Frost Free 400L", Description: "Duplex, inox", Price: 3199.00, Brand: "Brastemp", CategoryID: 2},
	{ID: 5, Name: "Micro-ondas 32L", Description: "Com grill e menu automático", Price: 649.90, Brand: "Electrolux", CategoryID: 2},
	{ID: 6, Name: "Lavadora 12kg", Description: "Turbo Economia", Price: 2099.00, Brand: "Electrolux", CategoryID: 2},
	{ID: 7, Name: "Notebook IdeaPad 3", Description: "Ryzen 5, 8GB, 256GB SSD", Price: 2799.00, Brand: "Lenovo", CategoryID: 3},
	{ID: 8, Name: "Monitor 24 Full HD", Description: "75Hz, HDMI", Price: 749.00, Brand: "LG", CategoryID: 3},
	{ID: 9, Name: "MacBook Air M2", Description: "8GB, 256GB SSD", Price: 8499.00, Brand: "Apple", CategoryID: 3},
	{ID: 10, Name: "Mouse sem fio MX", Description: "Sensor de alta precisão", Price: 349.90, Brand: "Logitech", CategoryID: 3},
	{ID: 11, Name: "Fone Bluetooth WH-CH520", Description: "Até 50h de bateria", Price: 299.00, Brand: "Sony", CategoryID: 4},
	{ID: 12, Name: "Soundbar 2.1", Description: "Subwoofer sem fio", Price: 1199.00, Brand: "JBL", CategoryID: 4},
	{ID: 13, Name: "Caixa de Som Go 3", Description: "Portátil, à prova d'água", Price: 249.90, Brand: "JBL", CategoryID: 4},
	{ID: 14, Name: "Carregador Turbo 25W", Description: "USB-C", Price: 129.90, Brand: "Samsung", CategoryID: 5},
	{ID: 15, Name: "Capa Protetora iPhone 13", Description: "Silicone", Price: 89.90, Brand: "Apple", CategoryID: 5},
}

var seedSales = []sale{
	{ID: 1, ProductID: 1, Quantity: 2, TotalPrice: 3799.80, Date: "2024-01-05"},
	{ID: 2, ProductID: 3, Quantity: 1, TotalPrice: 3999.00, Date: "2024-01-09"},
	{ID: 3, ProductID: 8, Quantity: 3, TotalPrice: 2247.00, Date: "2024-01-12"},
	{ID: 4, ProductID: 13, Quantity: 5, TotalPrice: 1249.50, Date: "2024-01-15"},
	{ID: 5, ProductID: 5, Quantity: 1, TotalPrice: 649.90, Date: "2024-01-18"},
	{ID: 6, ProductID: 11, Quantity: 2, TotalPrice: 598.00, Date: "2024-01-22"},
	{ID: 7, ProductID: 7, Quantity: 1, TotalPrice: 2799.00, Date: "2024-01-25"},
	{ID: 8, ProductID: 14, Quantity: 4, TotalPrice: 519.60, Date: "2024-01-28"},
	{ID: 9, ProductID: 2, Quantity: 1, TotalPrice: 2349.00, Date: "2024-02-02"},
	{ID: 10, ProductID: 4, Quantity: 1, TotalPrice: 3199.00, Date: "2024-02-05"},
	{ID: 11, ProductID: 10, Quantity: 2, TotalPrice: 699.80, Date: "2024-02-08"},
	{ID: 12, ProductID: 1, Quantity: 1, TotalPrice: 1899.90, Date: "2024-02-11"},
	{ID: 13, ProductID: 12, Quantity: 1, TotalPrice: 1199.00, Date: "2024-02-14"},
	{ID: 14, ProductID: 15, Quantity: 3, TotalPrice: 269.70, Date: "2024-02-17"},
	{ID: 15, ProductID: 9, Quantity: 1, TotalPrice: 8499.00, Date: "2024-02-20"},
	{ID: 16, ProductID: 6, Quantity: 1, TotalPrice: 2099.00, Date: "2024-02-23"},
	{ID: 17, ProductID: 13, Quantity: 2, TotalPrice: 499.80, Date: "2024-02-26"},
	{ID: 18, ProductID: 3, Quantity: 1, TotalPrice: 3999.00, Date: "2024-03-01"},
	{ID: 19, ProductID: 11, Quantity: 4, TotalPrice: 1196.00, Date: "2024-03-04"},
	{ID: 20, ProductID: 8, Quantity: 1, TotalPrice: 749.00, Date: "2024-03-07"},
	{ID: 21, ProductID: 1, Quantity: 3, TotalPrice: 5699.70, Date: "2024-03-10"},
	{ID: 22, ProductID: 5, Quantity: 2, TotalPrice: 1299.80, Date: "2024-03-13"},
	{ID: 23, ProductID: 14, Quantity: 6, TotalPrice: 779.40, Date: "2024-03-16"},
	{ID: 24, ProductID: 7, Quantity: 1, TotalPrice: 2799.00, Date: "2024-03-19"},
	{ID: 25, ProductID: 2, Quantity: 2, TotalPrice: 4698.00, Date: "2024-03-22"},
	{ID: 26, ProductID: 10, Quantity: 1, TotalPrice: 349.90, Date: "2024-03-25"},
	{ID: 27, ProductID: 12, Quantity: 1, TotalPrice: 1199.00, Date: "2024-03-28"},
	{ID: 28, ProductID: 4, Quantity: 1, TotalPrice: 3199.00, Date: "2024-04-02"},
	{ID: 29, ProductID: 13, Quantity: 3, TotalPrice: 749.70, Date: "2024-04-05"},
	{ID: 30, ProductID: 15, Quantity: 2, TotalPrice: 179.80, Date: "2024-04-08"},
	{ID: 31, ProductID: 9, Quantity: 1, TotalPrice: 8499.00, Date: "2024-04-11"},
	{ID: 32, ProductID: 3, Quantity: 2, TotalPrice: 7998.00, Date: "2024-04-14"},
	{ID: 33, ProductID: 6, Quantity: 1, TotalPrice: 2099.00, Date: "2024-04-17"},
	{ID: 34, ProductID: 11, Quantity: 1, TotalPrice: 299.00, Date: "2024-04-20"},
	{ID: 35, ProductID: 1, Quantity: 1, TotalPrice: 1899.90, Date: "2024-04-23"},
	{ID: 36, ProductID: 8, Quantity: 2, TotalPrice: 1498.00, Date: "2024-04-26"},
	{ID: 37, ProductID: 5, Quantity: 1, TotalPrice: 649.90, Date: "2024-05-01"},
	{ID: 38, ProductID: 14, Quantity: 3, TotalPrice: 389.70, Date: "2024-05-04"},
	{ID: 39, ProductID: 2, Quantity: 1, TotalPrice: 2349.00, Date: "2024-05-07"},
	{ID: 40, ProductID: 7, Quantity: 2, TotalPrice: 5598.00, Date: "2024-05-10"},
	{ID: 41, ProductID: 12, Quantity: 2, TotalPrice: 2398.00, Date: "2024-05-13"},
	{ID: 42, ProductID: 13, Quantity: 4, TotalPrice: 999.60, Date: "2024-05-16"},
	{ID: 43, ProductID: 10, Quantity: 3, TotalPrice: 1049.70, Date: "2024-05-19"},
	{ID: 44, ProductID: 4, Quantity: 1, TotalPrice: 3199.00, Date: "2024-05-22"},
	{ID: 45, ProductID: 1, Quantity: 2, TotalPrice: 3799.80, Date: "2024-05-25"},
	{ID: 46, ProductID: 15, Quantity: 5, TotalPrice: 449.50, Date: "2024-05-28"},
	{ID: 47, ProductID: 3, Quantity: 1, TotalPrice: 3999.00, Date: "2024-06-02"},
	{ID: 48, ProductID: 9, Quantity: 1, TotalPrice: 8499.00, Date: "2024-06-05"},
	{ID: 49, ProductID: 11, Quantity: 2, TotalPrice: 598.00, Date: "2024-06-08"},
	{ID: 50, ProductID: 6, Quantity: 1, TotalPrice: 2099.00, Date: "2024-06-11"},
	{ID: 51, ProductID: 8, Quantity: 1, TotalPrice: 749.00, Date: "2024-06-14"},
	{ID: 52, ProductID: 2, Quantity: 1, TotalPrice: 2349.00, Date: "2024-06-17"},
	{ID: 53, ProductID: 5, Quantity: 2, TotalPrice: 1299.80, Date: "2024-06-20"},
	{ID: 54, ProductID: 14, Quantity: 2, TotalPrice: 259.80, Date: "2024-06-23"},
	{ID: 55, ProductID: 13, Quantity: 1, TotalPrice: 249.90, Date: "2024-06-26"},
	{ID: 56, ProductID: 7, Quantity: 1, TotalPrice: 2799.00, Date: "2024-06-29"},
	{ID: 57, ProductID: 1, Quantity: 1, TotalPrice: 1899.90, Date: "2024-07-02"},
	{ID: 58, ProductID: 12, Quantity: 1, TotalPrice: 1199.00, Date: "2024-07-05"},
	{ID: 59, ProductID: 10, Quantity: 2, TotalPrice: 699.80, Date: "2024-07-08"},
	{ID: 60, ProductID: 15, Quantity: 1, TotalPrice: 89.90, Date: "2024-07-11"},
}
